package promptcmd

import (
	"github.com/chzyer/readline"
)

// Completion builds the completion items offered after a command name.
type Completion func() []readline.PrefixCompleterInterface

// Words completes the first argument from a fixed word list.
func Words(words ...string) Completion {
	return func() []readline.PrefixCompleterInterface {
		items := make([]readline.PrefixCompleterInterface, 0, len(words))
		for _, w := range words {
			items = append(items, readline.PcItem(w))
		}
		return items
	}
}

// Dynamic completes the first argument from fn, called with the current line.
func Dynamic(fn func(line string) []string) Completion {
	return func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{readline.PcItemDynamic(fn)}
	}
}

// Completer builds the completion tree: one item per dispatchable name,
// with that command's argument items nested below.
func (c *Cmd) Completer() *readline.PrefixCompleter {
	names := c.registry.Names()
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name, c.completionFor(name)...))
	}
	return readline.NewPrefixCompleter(items...)
}

func (c *Cmd) completionFor(name string) []readline.PrefixCompleterInterface {
	complete, ok := c.completions[name]
	if !ok {
		complete, ok = c.completions[c.registry.Resolve(name)]
	}
	if !ok || complete == nil {
		return nil
	}
	return complete()
}
