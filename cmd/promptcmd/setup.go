package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/promptcmd/internal/config"
	"github.com/sandevgo/promptcmd/internal/storage/sqlite"
	"github.com/sandevgo/promptcmd/pkg/log"
	"github.com/sandevgo/promptcmd/pkg/promptcmd"
	"github.com/sandevgo/promptcmd/pkg/srv"
)

// loadConfig loads <runtime>/.env, then parses the environment.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	if err := initEnv(ctx, config.GetEnvPath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}
	return config.NewAppConfig()
}

// initHistory opens the configured history backend. The returned services
// release its resources on shutdown.
func initHistory(ctx context.Context, cfg *config.AppConfig) (*sqlite.History, []srv.Service, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	hist := sqlite.NewHistory(db, cfg.HistoryProfile, cfg.Shell.HistoryLimit)
	return hist, []srv.Service{srv.NewCleanup(db.Close)}, nil
}

func shellHistory(ctx context.Context, cfg *config.AppConfig) (promptcmd.History, []srv.Service, error) {
	if cfg.HistoryBackend == config.HistoryMemory {
		return promptcmd.NewMemoryHistory(cfg.Shell.HistoryLimit), nil, nil
	}
	return initHistory(ctx, cfg)
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
