package promptcmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHelp(t *testing.T) {
	c := newTestCmd(t, []Command{
		{Name: "sleep", Required: []string{"seconds"}, Doc: "Wait for **seconds**", Handler: noop},
		{Name: "add", Required: []string{"a", "b"}, Optional: []string{"c"}, Doc: "Add numbers", Handler: noop},
		{Name: "bare", Handler: noop},
	}, WithAliases(map[string]string{"+": "add", "s": "sleep"}))

	var out bytes.Buffer
	require.NoError(t, c.WriteHelp(&out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Commands:", lines[1])
	assert.Equal(t, "=========", lines[2])

	// widest usage is "add|+ <a> <b> [c]" (17), so docs start at column 19
	want := []string{
		"add|+ <a> <b> [c]  Add numbers",
		"bare               ",
		"help|?             Print commands usage",
		"history            Print commands history",
		"quit|exit          Exit the prompt",
	}
	assert.Equal(t, want, lines[3:8])
	assert.True(t, strings.HasPrefix(lines[8], "sleep|s <seconds>  Wait for "))
	assert.Contains(t, lines[8], "seconds")
	assert.NotContains(t, lines[8], "**")
}

func TestWriteHelp_ListsEveryCommandOnce(t *testing.T) {
	c := newTestCmd(t, []Command{echoCommand()}, WithAliases(map[string]string{"say": "echo", "print": "echo"}))

	var out bytes.Buffer
	require.NoError(t, c.Execute(context.Background(), &out, "help"))

	text := out.String()
	for _, name := range c.Registry().Commands() {
		count := 0
		for _, line := range strings.Split(text, "\n") {
			if strings.HasPrefix(line, name+" ") || strings.HasPrefix(line, name+"|") {
				count++
			}
		}
		assert.Equal(t, 1, count, name)
	}
	assert.Contains(t, text, "echo|print|say <text> [more]")
}

func TestWriteHelp_CustomHeader(t *testing.T) {
	cfg := testConfig()
	cfg.DocHeader = "Available:"
	c, err := New(cfg, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, c.WriteHelp(&out))
	assert.True(t, strings.HasPrefix(out.String(), "\nAvailable:\n==========\n"))
}

func TestWriteHelp_DocKeepsPlaceholders(t *testing.T) {
	c := newTestCmd(t, []Command{
		{Name: "get", Required: []string{"key"}, Doc: "Fetch <key> from the store & print it", Handler: noop},
		{Name: "put", Required: []string{"key", "value"}, Doc: "Store <value>\nunder <key>", Handler: noop},
	})

	var out bytes.Buffer
	require.NoError(t, c.WriteHelp(&out))

	text := out.String()
	assert.Contains(t, text, "get <key>          Fetch <key> from the store & print it\n")
	assert.Contains(t, text, "put <key> <value>  Store <value>")
	assert.Contains(t, text, "under <key>")
	assert.NotContains(t, text, "Store <value> under")
}
