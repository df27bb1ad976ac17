package demo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

type SleepCommand struct{}

func NewSleepCommand() *SleepCommand {
	return &SleepCommand{}
}

func (c *SleepCommand) Command() promptcmd.Command {
	return promptcmd.Command{
		Name:     "sleep",
		Required: []string{"seconds"},
		Doc:      "Wait for **seconds**; Ctrl-C cancels",
		Handler:  c.Execute,
	}
}

func (c *SleepCommand) Execute(ctx context.Context, req *promptcmd.Request) error {
	seconds, err := strconv.ParseFloat(req.Args[0], 64)
	if err != nil || seconds < 0 {
		return fmt.Errorf("invalid duration %q", req.Args[0])
	}
	d := time.Duration(seconds * float64(time.Second))

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	fmt.Fprintf(req.Out, "slept %s\n", d)
	return nil
}
