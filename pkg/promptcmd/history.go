package promptcmd

import (
	"context"
	"sync"
)

// History persists accepted input lines.
type History interface {
	Append(ctx context.Context, line string) error
	// Lines returns the stored lines, oldest first.
	Lines(ctx context.Context) ([]string, error)
}

// MemoryHistory keeps the last limit lines in memory.
type MemoryHistory struct {
	mu    sync.Mutex
	lines []string
	limit int
}

// NewMemoryHistory returns a History bounded to limit lines; limit <= 0 means unbounded.
func NewMemoryHistory(limit int) *MemoryHistory {
	return &MemoryHistory{limit: limit}
}

func (h *MemoryHistory) Append(_ context.Context, line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
	return nil
}

func (h *MemoryHistory) Lines(_ context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out, nil
}
