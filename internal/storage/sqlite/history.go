package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/promptcmd/pkg/log"
)

// History stores accepted shell lines per profile.
type History struct {
	db      *sql.DB
	profile string
	limit   int
}

// NewHistory returns a store for profile. Lines returns at most limit
// entries; limit <= 0 returns everything.
func NewHistory(db *sql.DB, profile string, limit int) *History {
	return &History{db: db, profile: profile, limit: limit}
}

func (h *History) Append(ctx context.Context, line string) error {
	query := `INSERT INTO history (profile, line) VALUES (?, ?)`
	if _, err := h.db.ExecContext(ctx, query, h.profile, line); err != nil {
		return fmt.Errorf("failed to insert history line: %w", err)
	}
	return nil
}

func (h *History) Lines(ctx context.Context) ([]string, error) {
	return h.Last(ctx, h.limit)
}

// Last returns the newest limit lines in chronological order.
func (h *History) Last(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	// Fetch the LAST 'limit' lines by ordering DESC
	query := `SELECT line FROM history WHERE profile = ? ORDER BY id DESC LIMIT ?`
	rows, err := h.db.QueryContext(ctx, query, h.profile, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan history line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest -> oldest from the query, callers want oldest first
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(lines)).Str("profile", h.profile).Msg("loaded history")
	return lines, nil
}

// Clear removes every line of the profile.
func (h *History) Clear(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, `DELETE FROM history WHERE profile = ?`, h.profile); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
