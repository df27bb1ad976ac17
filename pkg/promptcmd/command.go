package promptcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrExit is returned by a handler to end the loop. The built-in quit
	// command returns it.
	ErrExit = errors.New("exit prompt")

	// ErrCommandCanceled is the cancellation cause seen by a handler whose
	// command was interrupted.
	ErrCommandCanceled = errors.New("command canceled")

	ErrNotFound         = errors.New("command not found")
	ErrDanglingAlias    = errors.New("alias points to unknown command")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrDuplicateCommand = errors.New("command already registered")
)

// Handler runs one command. Long-running handlers must return once ctx is
// done; the loop waits for the handler before it reads the next line.
type Handler func(ctx context.Context, req *Request) error

// Request is a single dispatched invocation.
type Request struct {
	// Name is the canonical command name, after alias resolution.
	Name string
	// Args holds the arguments after the command token.
	Args []string
	// Out is the session writer. Output written here does not clobber the prompt.
	Out io.Writer
}

// Arg returns the i-th argument or def when it was not supplied.
func (r *Request) Arg(i int, def string) string {
	if i < len(r.Args) {
		return r.Args[i]
	}
	return def
}

// Command is a named unit of work with a declared argument contract.
// Doc is markdown; help prints it as plain text with its line breaks kept.
type Command struct {
	Name     string
	Required []string
	Optional []string
	Doc      string
	Handler  Handler
}

// CheckArgs validates the argument count against the command's contract.
func (c Command) CheckArgs(args []string) error {
	if len(args) < len(c.Required) || len(args) > len(c.Required)+len(c.Optional) {
		return &UsageError{Command: c.Name, Got: len(args)}
	}
	return nil
}

// UsageError reports an argument count outside the command's bounds.
type UsageError struct {
	Command string
	Got     int
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return fmt.Sprintf("bad command args for %s: got %d", e.Command, e.Got)
	}
	return "Bad command args. Usage: " + e.Usage
}
