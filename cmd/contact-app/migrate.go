package main

import (
	"github.com/spf13/cobra"

	"github.com/joestump/contact-app/internal/config"
	"github.com/joestump/contact-app/internal/db"
	"github.com/joestump/contact-app/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(&logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Format: cfg.Log.Format})

			if cfg.DB.Driver == config.MemoryDriver {
				log.Info("memory driver has no schema; nothing to migrate")
				return nil
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			log.Info("migrations complete", "driver", cfg.DB.Driver)
			return nil
		},
	}
}
