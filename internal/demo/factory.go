// Package demo is a small command set that exercises the shell framework
// from the promptcmd binary.
package demo

import (
	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

// NewCommands returns the demo commands. dir is the directory cat reads
// and completes from.
func NewCommands(dir string) []promptcmd.Command {
	return []promptcmd.Command{
		NewSleepCommand().Command(),
		NewAddCommand().Command(),
		NewEchoCommand().Command(),
		NewCatCommand(dir).Command(),
	}
}

func Aliases() map[string]string {
	return map[string]string{
		"s": "sleep",
		"+": "add",
	}
}

func Completions(dir string) map[string]promptcmd.Completion {
	return map[string]promptcmd.Completion{
		"sleep": promptcmd.Words("1", "5", "30"),
		"cat":   promptcmd.Dynamic(NewCatCommand(dir).listFiles),
	}
}
