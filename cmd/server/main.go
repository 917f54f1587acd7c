package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mangoadvisory/internal/config"
	"mangoadvisory/internal/database"
	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/server"
	"mangoadvisory/internal/service"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "advisory-server",
		Short: "Backend for the Mango Advisory site",
	}

	rootCmd.AddCommand(serveCommand(), migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCommand constructs the 'serve' subcommand running the HTTP server.
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := logging.InitLogger(&logging.LogConfig{
				File:       cfg.LogFile,
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     7,
			}); err != nil {
				return err
			}
			logger := logging.GetGlobalLogger()
			defer logger.Close()

			logger.Info("Starting server in %s mode", cfg.Environment)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.Connect(ctx, cfg)
			if err != nil {
				logger.Error("Failed to initialize database: %v", err)
				return err
			}
			defer db.Close()

			mailService := service.NewMailService(cfg)

			srv := server.NewServer(cfg, db, mailService)
			srv.Init()

			if err := srv.Start(ctx); err != nil {
				logger.Error("Server stopped with error: %v", err)
				return err
			}

			logger.Info("Server stopped")
			return nil
		},
	}
}
