package demo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

type AddCommand struct{}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (c *AddCommand) Command() promptcmd.Command {
	return promptcmd.Command{
		Name:     "add",
		Required: []string{"a", "b"},
		Optional: []string{"c"},
		Doc:      "Add two or three numbers",
		Handler:  c.Execute,
	}
}

func (c *AddCommand) Execute(_ context.Context, req *promptcmd.Request) error {
	var sum float64
	for _, arg := range req.Args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", arg)
		}
		sum += n
	}

	fmt.Fprintln(req.Out, strconv.FormatFloat(sum, 'f', -1, 64))
	return nil
}
