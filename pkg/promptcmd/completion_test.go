package promptcmd

import (
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(items []readline.PrefixCompleterInterface) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, string(item.GetName()))
	}
	return names
}

func TestCompleter(t *testing.T) {
	c := newTestCmd(t,
		[]Command{
			{Name: "sleep", Required: []string{"seconds"}, Handler: noop},
			{Name: "cat", Required: []string{"path"}, Handler: noop},
		},
		WithAliases(map[string]string{"s": "sleep"}),
		WithCompletions(map[string]Completion{
			"sleep": Words("1", "5"),
			"cat":   Dynamic(func(string) []string { return []string{"a.txt", "b.txt"} }),
		}),
	)

	root := c.Completer()
	top := root.GetChildren()
	assert.Equal(t,
		[]string{"? ", "cat ", "exit ", "help ", "history ", "quit ", "s ", "sleep "},
		childNames(top),
	)

	byName := make(map[string]readline.PrefixCompleterInterface, len(top))
	for _, item := range top {
		byName[string(item.GetName())] = item
	}

	assert.Equal(t, []string{"1 ", "5 "}, childNames(byName["sleep "].GetChildren()))
	assert.Equal(t, []string{"1 ", "5 "}, childNames(byName["s "].GetChildren()), "alias falls back to its target")
	assert.Empty(t, byName["help "].GetChildren())

	catItems := byName["cat "].GetChildren()
	require.Len(t, catItems, 1)
	dynamic, ok := catItems[0].(*readline.PrefixCompleter)
	require.True(t, ok)
	assert.True(t, dynamic.Dynamic)
	assert.Equal(t, []string{"a.txt", "b.txt"}, dynamic.Callback("cat "))
}

func TestCompleter_AliasOwnCompletion(t *testing.T) {
	c := newTestCmd(t,
		[]Command{{Name: "sleep", Required: []string{"seconds"}, Handler: noop}},
		WithAliases(map[string]string{"nap": "sleep"}),
		WithCompletions(map[string]Completion{
			"sleep": Words("1"),
			"nap":   Words("600"),
		}),
	)

	for _, item := range c.Completer().GetChildren() {
		switch string(item.GetName()) {
		case "sleep ":
			assert.Equal(t, []string{"1 "}, childNames(item.GetChildren()))
		case "nap ":
			assert.Equal(t, []string{"600 "}, childNames(item.GetChildren()))
		}
	}
}

func TestCompleter_Do(t *testing.T) {
	c := newTestCmd(t, []Command{{Name: "sleep", Required: []string{"seconds"}, Handler: noop}})

	line := []rune("sle")
	candidates, offset := c.Completer().Do(line, len(line))
	require.Len(t, candidates, 1)
	assert.Equal(t, "ep ", string(candidates[0]))
	assert.Equal(t, 3, offset)
}
