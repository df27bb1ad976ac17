package demo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/promptcmd/pkg/promptcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, ctx context.Context, cmd promptcmd.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, cmd.CheckArgs(args))
	err := cmd.Handler(ctx, &promptcmd.Request{Name: cmd.Name, Args: args, Out: &out})
	return out.String(), err
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "two numbers", args: []string{"1", "2"}, want: "3\n"},
		{name: "three numbers", args: []string{"1", "2", "0.5"}, want: "3.5\n"},
		{name: "negative", args: []string{"-4", "1"}, want: "-3\n"},
		{name: "not a number", args: []string{"x", "1"}, wantErr: true},
	}

	cmd := NewAddCommand().Command()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, context.Background(), cmd, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEchoCommand(t *testing.T) {
	got, err := run(t, context.Background(), NewEchoCommand().Command(), "hello world", "again")
	require.NoError(t, err)
	assert.Equal(t, "hello world again\n", got)
}

func TestSleepCommand(t *testing.T) {
	cmd := NewSleepCommand().Command()

	t.Run("completes", func(t *testing.T) {
		got, err := run(t, context.Background(), cmd, "0.01")
		require.NoError(t, err)
		assert.Equal(t, "slept 10ms\n", got)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		_, err := run(t, ctx, cmd, "30")
		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := run(t, context.Background(), cmd, "soon")
		require.Error(t, err)
	})
}

func TestCatCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("one\ntwo\nthree\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	c := NewCatCommand(dir)
	cmd := c.Command()

	got, err := run(t, context.Background(), cmd, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", got)

	got, err = run(t, context.Background(), cmd, "notes.txt", "2")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", got)

	_, err = run(t, context.Background(), cmd, "missing.txt")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, context.Background(), cmd, "notes.txt", "many")
	require.Error(t, err)

	assert.Equal(t, []string{"notes.txt"}, c.listFiles("cat "))
}

func TestDemoCommandsRegister(t *testing.T) {
	shell, err := promptcmd.New(promptcmd.DefaultConfig(), NewCommands(t.TempDir()),
		promptcmd.WithAliases(Aliases()),
		promptcmd.WithCompletions(Completions(t.TempDir())),
	)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"add", "cat", "echo", "help", "history", "quit", "sleep"},
		shell.Registry().Commands(),
	)

	usage, err := shell.Usage("+")
	require.NoError(t, err)
	assert.Equal(t, "add|+ <a> <b> [c]", usage)
}
