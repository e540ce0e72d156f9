package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordbot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordbot-backend/migrations"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return postgres.Migrate(cmd.Context(), pool, migrations.FS, logger)
		},
	}
}
