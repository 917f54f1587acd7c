package main

import (
	"context"
	"fmt"

	root "mangoadvisory"
	"mangoadvisory/internal/config"
	"mangoadvisory/internal/database"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()

			db, err := database.Connect(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			sqlDB := db.SQLDB()
			defer sqlDB.Close()

			goose.SetBaseFS(root.Migrations)

			if err := goose.SetDialect("postgres"); err != nil {
				return fmt.Errorf("failed to set goose dialect: %w", err)
			}
			if err := goose.Up(sqlDB, "migrations"); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			fmt.Println("Migrations applied")
			return nil
		},
	}
}
