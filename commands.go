package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mistake-tracker/config"
	"mistake-tracker/config/setup"

	"github.com/spf13/cobra"
)

func serveCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := setup.InitDatabase(dbPath, logger)
			if err != nil {
				return fmt.Errorf("init database: %w", err)
			}
			defer setup.Shutdown(db, logger)

			application := setup.InitApp(db, logger)

			app := setup.NewFiberApp(cfg, logger)
			setup.ApplyMiddleware(app, cfg, logger)
			setup.RegisterRoutes(app, application)

			logger.Info("starting server", "port", port, "env", cfg.Env)

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(":" + port)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-quit:
			}

			logger.Info("shutting down server gracefully")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := app.ShutdownWithContext(ctx); err != nil {
				logger.Error("server forced to shutdown", "error", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", cfg.Port, "listen port")
	return cmd
}

func importCmd(logger *slog.Logger) *cobra.Command {
	var catalog bool

	cmd := &cobra.Command{
		Use:   "import [names...]",
		Short: "Add subjects that do not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !catalog && len(args) == 0 {
				return fmt.Errorf("give subject names or --catalog")
			}

			db, err := setup.InitDatabase(dbPath, logger)
			if err != nil {
				return fmt.Errorf("init database: %w", err)
			}
			defer db.Close()

			application := setup.InitApp(db, logger)
			ctx := cmd.Context()

			if catalog {
				result, err := application.Imports.ImportCatalog(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "catalog: added %d, skipped %d\n", result.AddedCount, result.SkippedCount)
			}

			if len(args) > 0 {
				result, err := application.Imports.AddSubjectsIfAbsent(ctx, args)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d, skipped %d\n", result.AddedCount, result.SkippedCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&catalog, "catalog", false, "import every subject of the built-in course catalog")
	return cmd
}

func checkCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the database is reachable and print counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := setup.InitDatabase(dbPath, logger)
			if err != nil {
				return fmt.Errorf("init database: %w", err)
			}
			defer db.Close()

			application := setup.InitApp(db, logger)
			ctx := cmd.Context()

			if err := application.Mistakes.CheckConnection(ctx); err != nil {
				return err
			}

			stats, err := application.Mistakes.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "database: ok")
			fmt.Fprintf(out, "subjects: %d\n", stats.TotalSubjects)
			fmt.Fprintf(out, "mistakes: %d\n", stats.TotalMistakes)
			fmt.Fprintf(out, "reviewed: %d\n", stats.ReviewedMistakes)
			return nil
		},
	}
}
