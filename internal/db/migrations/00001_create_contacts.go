package migrations

// The contacts table is created from Go because auto-increment primary keys
// are spelled differently by each database.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateContacts, downCreateContacts)
}

func upCreateContacts(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS contacts (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    phone       VARCHAR(25)  NOT NULL DEFAULT '',
    email       VARCHAR(100) NOT NULL DEFAULT '',
    address1    VARCHAR(50)  NOT NULL DEFAULT '',
    address2    VARCHAR(50)  NOT NULL DEFAULT '',
    address3    VARCHAR(50)  NOT NULL DEFAULT '',
    postal_code VARCHAR(20)  NOT NULL DEFAULT '',
    note        VARCHAR(4000) NOT NULL DEFAULT ''
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS contacts (
    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    phone       VARCHAR(25)  NOT NULL DEFAULT '',
    email       VARCHAR(100) NOT NULL DEFAULT '',
    address1    VARCHAR(50)  NOT NULL DEFAULT '',
    address2    VARCHAR(50)  NOT NULL DEFAULT '',
    address3    VARCHAR(50)  NOT NULL DEFAULT '',
    postal_code VARCHAR(20)  NOT NULL DEFAULT '',
    note        TEXT         NOT NULL
) DEFAULT CHARSET = utf8mb4`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS contacts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    phone       TEXT NOT NULL DEFAULT '',
    email       TEXT NOT NULL DEFAULT '',
    address1    TEXT NOT NULL DEFAULT '',
    address2    TEXT NOT NULL DEFAULT '',
    address3    TEXT NOT NULL DEFAULT '',
    postal_code TEXT NOT NULL DEFAULT '',
    note        TEXT NOT NULL DEFAULT ''
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

func downCreateContacts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS contacts`)
	return err
}
