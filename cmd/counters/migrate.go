package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/counters/internal/db"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			if err := db.Migrate(e.db, e.cfg.DB.Driver); err != nil {
				return err
			}

			e.logger.Info().Msg("migrations complete")
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			return db.Status(e.db, e.cfg.DB.Driver, os.Stdout)
		},
	})

	return cmd
}
