package main

import (
	"fmt"

	"github.com/sandevgo/promptcmd/internal/config"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print or clear the persisted shell history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if cfg.HistoryBackend != config.HistorySQLite {
			return fmt.Errorf("history backend %q is not persisted", cfg.HistoryBackend)
		}

		hist, services, err := initHistory(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			for _, s := range services {
				_ = s.Shutdown(ctx)
			}
		}()

		if historyClear {
			return hist.Clear(ctx)
		}

		lines, err := hist.Last(ctx, historyLimit)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "print only the newest n lines (0: all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the history of the current profile")
	rootCmd.AddCommand(historyCmd)
}
