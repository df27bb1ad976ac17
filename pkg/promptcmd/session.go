package promptcmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by Session.Readline when the user pressed Ctrl-C
// at the prompt. The pending input is discarded.
var ErrInterrupt = errors.New("input interrupted")

// Session is the line source for one Run. Readline returns io.EOF once the
// input is exhausted.
type Session interface {
	Readline() (string, error)
	AddHistory(line string) error
	SetPrompt(prompt string)
	Stdout() io.Writer
	Close() error
}

type SessionConfig struct {
	Prompt       string
	Completer    readline.AutoCompleter
	History      []string
	HistoryLimit int
}

type SessionFactory func(cfg SessionConfig) (Session, error)

type readlineSession struct {
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

// ReadlineSession opens an interactive terminal session backed by chzyer/readline.
func ReadlineSession(cfg SessionConfig) (Session, error) {
	rlCfg := &readline.Config{
		Prompt:                 cfg.Prompt,
		HistoryLimit:           cfg.HistoryLimit,
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	}
	if cfg.Completer != nil {
		rlCfg.AutoComplete = cfg.Completer
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	for _, line := range cfg.History {
		if err := rl.SaveHistory(line); err != nil {
			_ = rl.Close()
			return nil, fmt.Errorf("failed to preload history: %w", err)
		}
	}
	return &readlineSession{rl: rl}, nil
}

func (s *readlineSession) Readline() (string, error) {
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

func (s *readlineSession) AddHistory(line string) error {
	return s.rl.SaveHistory(line)
}

func (s *readlineSession) SetPrompt(prompt string) {
	s.rl.SetPrompt(prompt)
}

func (s *readlineSession) Stdout() io.Writer {
	return s.rl.Stdout()
}

func (s *readlineSession) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.rl.Close()
	})
	return s.closeErr
}

type scriptSession struct {
	mu      sync.Mutex
	in      io.Reader
	scanner *bufio.Scanner
	out     io.Writer
	closed  bool
}

// ScriptSession reads one command per line from r and writes output to w.
// There is no prompt, completion or line editing. Closing the session
// closes r when it is an io.Closer.
func ScriptSession(r io.Reader, w io.Writer) SessionFactory {
	return func(SessionConfig) (Session, error) {
		return &scriptSession{
			in:      r,
			scanner: bufio.NewScanner(r),
			out:     w,
		}, nil
	}
}

func (s *scriptSession) Readline() (string, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return "", io.EOF
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scriptSession) AddHistory(string) error { return nil }

func (s *scriptSession) SetPrompt(string) {}

func (s *scriptSession) Stdout() io.Writer {
	return s.out
}

func (s *scriptSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
