package promptcmd

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Registry holds the registered commands and the alias table.
// It is filled before the loop starts and only read afterwards.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string
}

func NewRegistry(aliases map[string]string) *Registry {
	r := &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string, len(aliases)),
	}
	for alias, target := range aliases {
		r.aliases[alias] = target
	}
	return r
}

func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || strings.IndexFunc(cmd.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: bad name %q", ErrInvalidCommand, cmd.Name)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", ErrInvalidCommand, cmd.Name)
	}
	if _, ok := r.commands[cmd.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// SetAlias maps alias to target. The target is not checked here.
func (r *Registry) SetAlias(alias, target string) {
	r.aliases[alias] = target
}

func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Known reports whether name is dispatchable, as a command or an alias.
func (r *Registry) Known(name string) bool {
	if _, ok := r.aliases[name]; ok {
		return true
	}
	return r.Has(name)
}

// Resolve maps an alias to its target. Other names are returned as is.
func (r *Registry) Resolve(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

func (r *Registry) Lookup(name string) (Command, error) {
	canonical := r.Resolve(name)
	cmd, ok := r.commands[canonical]
	if ok {
		return cmd, nil
	}
	if canonical != name {
		return Command{}, fmt.Errorf("%w: %s -> %s", ErrDanglingAlias, name, canonical)
	}
	return Command{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Commands returns the canonical command names, sorted.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns every dispatchable name, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]struct{}, len(r.commands)+len(r.aliases))
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for name := range r.commands {
		add(name)
	}
	for alias := range r.aliases {
		add(alias)
	}
	sort.Strings(names)
	return names
}

// AliasesOf returns the sorted aliases pointing at the canonical name.
func (r *Registry) AliasesOf(name string) []string {
	var aliases []string
	for alias, target := range r.aliases {
		if target == name {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Usage builds "name|alias <required> [optional]" for a command or alias.
func (r *Registry) Usage(name string) (string, error) {
	cmd, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	names := append([]string{cmd.Name}, r.AliasesOf(cmd.Name)...)
	parts := []string{strings.Join(names, "|")}
	for _, arg := range cmd.Required {
		parts = append(parts, "<"+arg+">")
	}
	for _, arg := range cmd.Optional {
		parts = append(parts, "["+arg+"]")
	}
	return strings.Join(parts, " "), nil
}

// Validate reports the first alias whose target is not a registered command.
func (r *Registry) Validate() error {
	aliases := make([]string, 0, len(r.aliases))
	for alias := range r.aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		if !r.Has(r.aliases[alias]) {
			return fmt.Errorf("%w: %s -> %s", ErrDanglingAlias, alias, r.aliases[alias])
		}
	}
	return nil
}
