package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

const (
	HistorySQLite = "sqlite"
	HistoryMemory = "memory"
)

type AppConfig struct {
	RuntimePath    string `env:"PROMPTCMD_RUNTIME_PATH" envDefault:".promptcmd"`
	HistoryBackend string `env:"PROMPTCMD_HISTORY_BACKEND" envDefault:"sqlite"`
	HistoryProfile string `env:"PROMPTCMD_HISTORY_PROFILE" envDefault:"default"`
	Color          bool   `env:"PROMPTCMD_COLOR" envDefault:"true"`

	Shell promptcmd.Config `envPrefix:"PROMPTCMD_"`
}

// NewAppConfig parses the environment. The runtime path is made absolute
// relative to the home directory.
func NewAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	switch c.HistoryBackend {
	case HistorySQLite, HistoryMemory:
	default:
		return nil, fmt.Errorf("unknown history backend %q", c.HistoryBackend)
	}

	c.RuntimePath = absRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "history.db")
}
