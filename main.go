package main

import (
	"log/slog"
	"os"

	"mistake-tracker/config"

	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	cfg := config.Load()

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:           "mistake-tracker",
		Short:         "Track study mistakes by subject, category and tag",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "database path")

	rootCmd.AddCommand(serveCmd(cfg, logger))
	rootCmd.AddCommand(importCmd(logger))
	rootCmd.AddCommand(checkCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(cfg.LogLevel),
		AddSource: cfg.Env == "development",
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
