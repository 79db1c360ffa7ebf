package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/contact-app/internal/config"
	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/db"
	"github.com/joestump/contact-app/internal/store"
)

// openStore returns the contact store selected by cfg. The returned DB is nil
// for the memory driver; close must always be called.
func openStore(cfg *config.Config) (s contacts.Store, database *sqlx.DB, closeFn func(), err error) {
	if cfg.DB.Driver == config.MemoryDriver {
		return store.NewMemoryStore(), nil, func() {}, nil
	}

	database, err = db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn = func() { _ = database.Close() }

	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		closeFn()
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return store.NewContactStore(database), database, closeFn, nil
}
