package main

import (
	"events-app-backend/cmd/events-app/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the events, guests and event_guests tables",
	RunE: func(cmd *cobra.Command, args []string) error {

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := openDB(cfg, logger)
		if err != nil {
			return err
		}

		err = repository.Migrate(cmd.Context(), db)
		if err != nil {
			return err
		}

		logger.Info().Str("driver", cfg.DBDriver).Msg("migration complete")
		return nil
	},
}
