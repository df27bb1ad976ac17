package promptcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sandevgo/promptcmd/pkg/log"
)

// Run reads and executes lines until end of input, the quit command, or
// ctx being cancelled. Session, signal handler and OnClose hook are torn
// down on every exit path.
func (c *Cmd) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if c.cfg.IgnoreSigint && signalSupported {
		c.intr.listen()
		defer c.intr.close()
	}

	lines, err := c.history.Lines(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load history")
		lines = nil
	}

	sess, err := c.newSession(SessionConfig{
		Prompt:       c.prompt(),
		Completer:    c.Completer(),
		History:      lines,
		HistoryLimit: c.cfg.HistoryLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	c.setSession(sess)

	stop := context.AfterFunc(ctx, func() {
		_ = sess.Close()
	})
	defer func() {
		stop()
		if err := sess.Close(); err != nil {
			logger.Debug().Err(err).Msg("failed to close session")
		}
		c.setSession(nil)
		if c.onClose != nil {
			c.onClose()
		}
	}()

	logger.Debug().Int("commands", len(c.registry.Commands())).Msg("prompt loop started")
	return c.loop(ctx, sess)
}

func (c *Cmd) loop(ctx context.Context, sess Session) error {
	logger := log.FromCtx(ctx)

	for {
		line, err := sess.Readline()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch {
			case errors.Is(err, ErrInterrupt):
				continue
			case errors.Is(err, io.EOF):
				logger.Debug().Msg("end of input")
				return nil
			}
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := c.history.Append(ctx, line); err != nil {
			logger.Warn().Err(err).Msg("failed to store history")
		}
		if err := sess.AddHistory(line); err != nil {
			logger.Debug().Err(err).Msg("failed to add session history")
		}

		if err := c.Execute(ctx, sess.Stdout(), line); errors.Is(err, ErrExit) {
			logger.Debug().Msg("exit requested")
			return nil
		}
	}
}

// Execute dispatches one input line. Failures are written to out; the only
// error returned is ErrExit.
func (c *Cmd) Execute(ctx context.Context, out io.Writer, line string) error {
	logger := log.FromCtx(ctx)

	args, err := shellquote.Split(line)
	if err != nil {
		fmt.Fprintf(out, "Failed to parse command: %v\n", err)
		return nil
	}
	if len(args) == 0 {
		return nil
	}

	name := args[0]
	if !c.registry.Known(name) {
		fmt.Fprintf(out, "Command %s not found!\n", name)
		return nil
	}

	cmd, err := c.registry.Lookup(name)
	if err != nil {
		fmt.Fprintf(out, "Command failed: %v\n", err)
		return nil
	}

	if err := cmd.CheckArgs(args[1:]); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			usageErr.Usage, _ = c.registry.Usage(cmd.Name)
		}
		fmt.Fprintln(out, err)
		return nil
	}

	logger.Debug().Str("command", cmd.Name).Strs("args", args[1:]).Msg("running command")
	interrupted, err := c.runTask(ctx, cmd, &Request{Name: cmd.Name, Args: args[1:], Out: out})
	switch {
	case errors.Is(err, ErrExit):
		return ErrExit
	case err != nil && (interrupted || errors.Is(err, context.Canceled)):
		logger.Debug().Str("command", cmd.Name).Msg("command canceled")
		fmt.Fprintln(out)
	case err != nil:
		logger.Debug().Err(err).Str("command", cmd.Name).Msg("command failed")
		fmt.Fprintf(out, "Command failed: %v\n", err)
	}
	return nil
}

// runTask runs the handler as the single running task. A panic is reported
// as a command failure.
func (c *Cmd) runTask(ctx context.Context, cmd Command, req *Request) (interrupted bool, err error) {
	taskCtx, done := c.intr.begin(ctx)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		interrupted = done()
	}()

	return false, cmd.Handler(taskCtx, req)
}

func (c *Cmd) prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Prompt
}

func (c *Cmd) setSession(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}
