package migrations

// Name searches scan the whole table anyway (substring match), but ordering
// and equality lookups by name benefit from the index. DROP INDEX needs the
// table name on MySQL only.

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddContactsNameIndex, downAddContactsNameIndex)
}

func upAddContactsNameIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE INDEX idx_contacts_name ON contacts (name)`)
	return err
}

func downAddContactsNameIndex(ctx context.Context, tx *sql.Tx) error {
	stmt := `DROP INDEX IF EXISTS idx_contacts_name`
	if dialect == "mysql" {
		stmt = `ALTER TABLE contacts DROP INDEX idx_contacts_name`
	}
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
