package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

type EchoCommand struct{}

func NewEchoCommand() *EchoCommand {
	return &EchoCommand{}
}

func (c *EchoCommand) Command() promptcmd.Command {
	return promptcmd.Command{
		Name:     "echo",
		Required: []string{"text"},
		Optional: []string{"more"},
		Doc:      "Print the arguments; quote to keep spaces",
		Handler:  c.Execute,
	}
}

func (c *EchoCommand) Execute(_ context.Context, req *promptcmd.Request) error {
	_, err := fmt.Fprintln(req.Out, strings.Join(req.Args, " "))
	return err
}
