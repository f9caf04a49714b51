package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/deathfx/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.Database.Enabled() {
			return fmt.Errorf("database.host is not configured")
		}

		if err := db.RunMigrations(cmd.Context(), cfg.Database.DSN()); err != nil {
			return err
		}
		slog.Info("database migrations applied")
		return nil
	},
}
