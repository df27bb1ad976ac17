package promptcmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sandevgo/promptcmd/pkg/conv"
)

// Styles decorates the help listing. Styles are applied after the usage
// column has been padded, so colours never affect alignment.
type Styles struct {
	Header lipgloss.Style
	Usage  lipgloss.Style
	Doc    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Usage:  lipgloss.NewStyle(),
		Doc:    lipgloss.NewStyle(),
	}
}

// Usage returns the usage line of a command or alias.
func (c *Cmd) Usage(name string) (string, error) {
	return c.registry.Usage(name)
}

// WriteHelp prints the header and one aligned line per canonical command.
func (c *Cmd) WriteHelp(w io.Writer) error {
	width := 0
	for _, name := range c.registry.Names() {
		usage, err := c.registry.Usage(name)
		if err != nil {
			return err
		}
		width = max(width, runewidth.StringWidth(usage))
	}

	var b strings.Builder
	header := c.cfg.DocHeader
	b.WriteString("\n")
	b.WriteString(c.styles.Header.Render(header) + "\n")
	b.WriteString(c.styles.Header.Render(strings.Repeat("=", runewidth.StringWidth(header))) + "\n")

	for _, name := range c.registry.Commands() {
		cmd, err := c.registry.Lookup(name)
		if err != nil {
			return err
		}
		usage, err := c.registry.Usage(name)
		if err != nil {
			return err
		}

		padded := usage + strings.Repeat(" ", width+2-runewidth.StringWidth(usage))
		b.WriteString(c.styles.Usage.Render(padded))
		if doc := conv.MarkdownToText(cmd.Doc); doc != "" {
			b.WriteString(c.styles.Doc.Render(doc))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (c *Cmd) helpCommand() Command {
	return Command{
		Name: "help",
		Doc:  "Print commands usage",
		Handler: func(_ context.Context, req *Request) error {
			return c.WriteHelp(req.Out)
		},
	}
}

func (c *Cmd) quitCommand() Command {
	return Command{
		Name: "quit",
		Doc:  "Exit the prompt",
		Handler: func(context.Context, *Request) error {
			return ErrExit
		},
	}
}

func (c *Cmd) historyCommand() Command {
	return Command{
		Name: "history",
		Doc:  "Print commands history",
		Handler: func(ctx context.Context, req *Request) error {
			lines, err := c.history.Lines(ctx)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(req.Out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
