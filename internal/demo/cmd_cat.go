package demo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

const defaultCatLines = 10

type CatCommand struct {
	dir string
}

func NewCatCommand(dir string) *CatCommand {
	return &CatCommand{dir: dir}
}

func (c *CatCommand) Command() promptcmd.Command {
	return promptcmd.Command{
		Name:     "cat",
		Required: []string{"path"},
		Optional: []string{"lines"},
		Doc:      "Print the first lines of a file (default 10)",
		Handler:  c.Execute,
	}
}

func (c *CatCommand) Execute(ctx context.Context, req *promptcmd.Request) error {
	limit, err := strconv.Atoi(req.Arg(1, strconv.Itoa(defaultCatLines)))
	if err != nil || limit < 0 {
		return fmt.Errorf("invalid line count %q", req.Arg(1, ""))
	}

	path := req.Args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 0; n < limit && scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(req.Out, scanner.Text())
	}
	return scanner.Err()
}

// listFiles offers the regular files of the command directory.
func (c *CatCommand) listFiles(string) []string {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
