package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/promptcmd/internal/demo"
	"github.com/sandevgo/promptcmd/internal/ui"
	"github.com/sandevgo/promptcmd/pkg/log"
	"github.com/sandevgo/promptcmd/pkg/promptcmd"
	"github.com/sandevgo/promptcmd/pkg/srv"
	"github.com/spf13/cobra"
)

var (
	scriptPath string
	workDir    string
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive demo shell",
	Long: `Starts a shell with the demo commands (sleep, add, echo, cat) plus the
built-in help, history and quit. Ctrl-C cancels the running command,
Ctrl-D or "exit" leaves the shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// SIGINT belongs to the shell: it cancels the running command only
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		hist, services, err := shellHistory(ctx, cfg)
		if err != nil {
			return err
		}

		dir := workDir
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
		}

		opts := []promptcmd.Option{
			promptcmd.WithAliases(demo.Aliases()),
			promptcmd.WithCompletions(demo.Completions(dir)),
			promptcmd.WithHistory(hist),
			promptcmd.WithStyles(ui.HelpStyles(cfg.Color && scriptPath == "")),
			promptcmd.WithOnClose(func() {
				logger.Debug().Msg("shell closed")
			}),
		}

		if scriptPath != "" {
			f, err := os.Open(scriptPath)
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			opts = append(opts, promptcmd.WithSession(promptcmd.ScriptSession(f, cmd.OutOrStdout())))
		}

		shell, err := promptcmd.New(cfg.Shell, demo.NewCommands(dir), opts...)
		if err != nil {
			return err
		}

		logger.Debug().Str("history", cfg.HistoryBackend).Msg("starting shell")
		return srv.Run(ctx, append(services, shell))
	},
}

func init() {
	shellCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "run commands from a file instead of the terminal")
	shellCmd.Flags().StringVar(&workDir, "dir", "", "directory used by cat (default: working directory)")
	rootCmd.AddCommand(shellCmd)
}
