// Package promptcmd turns a line editor into a command shell: commands are
// registered with their argument contract, lines are tokenised with shell
// quoting, and the matching handler runs as the single cancellable task.
package promptcmd

import (
	"context"
	"fmt"
	"sync"
)

// Config holds the shell settings. The env tags let callers parse it with
// caarlos0/env under their own prefix.
type Config struct {
	Prompt       string `env:"PROMPT" envDefault:"$ "`
	DocHeader    string `env:"DOC_HEADER" envDefault:"Commands:"`
	IgnoreSigint bool   `env:"IGNORE_SIGINT" envDefault:"true"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"500"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:       "$ ",
		DocHeader:    "Commands:",
		IgnoreSigint: true,
		HistoryLimit: 500,
	}
}

// DefaultAliases are installed by New before any WithAliases option.
func DefaultAliases() map[string]string {
	return map[string]string{
		"?":    "help",
		"exit": "quit",
	}
}

type Cmd struct {
	cfg         Config
	registry    *Registry
	completions map[string]Completion
	history     History
	newSession  SessionFactory
	styles      Styles
	onClose     func()
	intr        *interrupter

	mu      sync.Mutex
	session Session
}

type Option func(*Cmd)

// WithAliases adds alias entries on top of the defaults.
func WithAliases(aliases map[string]string) Option {
	return func(c *Cmd) {
		for alias, target := range aliases {
			c.registry.SetAlias(alias, target)
		}
	}
}

// WithCompletions sets the argument completion per command or alias name.
func WithCompletions(completions map[string]Completion) Option {
	return func(c *Cmd) {
		for name, complete := range completions {
			c.completions[name] = complete
		}
	}
}

func WithHistory(h History) Option {
	return func(c *Cmd) {
		c.history = h
	}
}

func WithSession(f SessionFactory) Option {
	return func(c *Cmd) {
		c.newSession = f
	}
}

func WithStyles(s Styles) Option {
	return func(c *Cmd) {
		c.styles = s
	}
}

// WithOnClose registers a hook run once Run has torn the session down.
func WithOnClose(fn func()) Option {
	return func(c *Cmd) {
		c.onClose = fn
	}
}

// New registers commands plus the built-in help, quit and history commands.
// A command named like a built-in replaces it. Aliases must point at
// registered commands.
func New(cfg Config, commands []Command, opts ...Option) (*Cmd, error) {
	c := &Cmd{
		cfg:         cfg,
		registry:    NewRegistry(DefaultAliases()),
		completions: make(map[string]Completion),
		history:     NewMemoryHistory(cfg.HistoryLimit),
		newSession:  ReadlineSession,
		styles:      DefaultStyles(),
		intr:        newInterrupter(),
	}

	for _, cmd := range commands {
		if err := c.registry.Register(cmd); err != nil {
			return nil, err
		}
	}
	for _, builtin := range []Command{c.helpCommand(), c.quitCommand(), c.historyCommand()} {
		if c.registry.Has(builtin.Name) {
			continue
		}
		if err := c.registry.Register(builtin); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid alias table: %w", err)
	}
	return c, nil
}

func (c *Cmd) Registry() *Registry {
	return c.registry
}

// Interrupt cancels the running command. It reports false when no command runs.
func (c *Cmd) Interrupt() bool {
	return c.intr.interrupt()
}

// SetPrompt changes the prompt, including for an active session.
func (c *Cmd) SetPrompt(prompt string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg.Prompt = prompt
	if c.session != nil {
		c.session.SetPrompt(prompt)
	}
}

// Start runs the shell as a service.
func (c *Cmd) Start(ctx context.Context) error {
	return c.Run(ctx)
}

// Shutdown interrupts the running command. Run itself returns once its
// context is cancelled.
func (c *Cmd) Shutdown(_ context.Context) error {
	c.Interrupt()
	return nil
}
