package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/contact-app/internal/contacts"
)

const contactColumns = `id, name, phone, email, address1, address2, address3, postal_code, note`

// columns maps filter fields to their column in the contacts table.
var columns = map[contacts.Field]string{
	contacts.FieldName:       "name",
	contacts.FieldPhone:      "phone",
	contacts.FieldEmail:      "email",
	contacts.FieldAddress1:   "address1",
	contacts.FieldAddress2:   "address2",
	contacts.FieldAddress3:   "address3",
	contacts.FieldPostalCode: "postal_code",
	contacts.FieldNote:       "note",
}

// ContactStore is the sqlx-backed implementation of contacts.Store.
// Records are ordered by ascending id.
type ContactStore struct {
	db *sqlx.DB
}

func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *ContactStore) q(query string) string { return s.db.Rebind(query) }

func (s *ContactStore) postgres() bool {
	switch s.db.DriverName() {
	case "postgres", "pgx":
		return true
	}
	return false
}

// containsExpr returns a case-sensitive substring test of column against a
// single bind parameter. LIKE is avoided: its case sensitivity differs per
// database and its wildcards would need escaping.
func (s *ContactStore) containsExpr(column string) string {
	switch s.db.DriverName() {
	case "postgres", "pgx":
		return "strpos(" + column + ", ?) > 0"
	case "mysql":
		return "LOCATE(CAST(? AS BINARY), CAST(" + column + " AS BINARY)) > 0"
	default: // sqlite
		return "instr(" + column + ", ?) > 0"
	}
}

// ExistsByID reports whether a contact with id is stored.
func (s *ContactStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.q(`SELECT COUNT(*) FROM contacts WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID returns the contact matching id, or ErrNotFound.
func (s *ContactStore) GetByID(ctx context.Context, id int64) (*contacts.Contact, error) {
	var c contacts.Contact
	err := s.db.GetContext(ctx, &c, s.q(`SELECT `+contactColumns+` FROM contacts WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ScanPage returns one page of all contacts.
func (s *ContactStore) ScanPage(ctx context.Context, page contacts.Page) ([]*contacts.Contact, error) {
	return s.ScanPageFiltered(ctx, contacts.Filter{}, page)
}

// ScanPageFiltered returns one page of the contacts matching filter.
func (s *ContactStore) ScanPageFiltered(ctx context.Context, filter contacts.Filter, page contacts.Page) ([]*contacts.Contact, error) {
	var (
		where []string
		args  []any
	)
	for _, cr := range filter.Criteria {
		column, ok := columns[cr.Field]
		if !ok {
			return nil, fmt.Errorf("unknown filter field %q", cr.Field)
		}
		where = append(where, s.containsExpr(column))
		args = append(args, cr.Value)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts`
	if !filter.Empty() {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY id ASC LIMIT ? OFFSET ?`
	args = append(args, page.Size, page.Offset())

	list := []*contacts.Contact{}
	if err := s.db.SelectContext(ctx, &list, s.q(query), args...); err != nil {
		return nil, err
	}
	return list, nil
}

// Upsert inserts c when it has no id and replaces the stored row otherwise.
// Replacing a row that no longer exists returns ErrNotFound.
func (s *ContactStore) Upsert(ctx context.Context, c *contacts.Contact) (*contacts.Contact, error) {
	if c.Persisted() {
		return s.update(ctx, c)
	}
	return s.insert(ctx, c)
}

func (s *ContactStore) insert(ctx context.Context, c *contacts.Contact) (*contacts.Contact, error) {
	const insert = `
		INSERT INTO contacts (name, phone, email, address1, address2, address3, postal_code, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{c.Name, c.Phone, c.Email, c.Address1, c.Address2, c.Address3, c.PostalCode, c.Note}

	var id int64
	if s.postgres() {
		err := s.db.QueryRowxContext(ctx, s.q(insert+` RETURNING id`), args...).Scan(&id)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := s.db.ExecContext(ctx, s.q(insert), args...)
		if err != nil {
			return nil, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return nil, err
		}
	}

	saved := *c
	saved.ID = id
	return &saved, nil
}

func (s *ContactStore) update(ctx context.Context, c *contacts.Contact) (*contacts.Contact, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE contacts
		SET name = ?, phone = ?, email = ?, address1 = ?, address2 = ?, address3 = ?, postal_code = ?, note = ?
		WHERE id = ?
	`), c.Name, c.Phone, c.Email, c.Address1, c.Address2, c.Address3, c.PostalCode, c.Note, c.ID)
	if err != nil {
		return nil, err
	}
	// MySQL connections are opened with clientFoundRows so that an update
	// leaving the row unchanged still counts as matched.
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	saved := *c
	return &saved, nil
}

// DeleteByID removes a contact by ID. Deleting a missing id is not an error.
func (s *ContactStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM contacts WHERE id = ?`), id)
	return err
}

// Count returns the number of stored contacts.
func (s *ContactStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contacts`); err != nil {
		return 0, err
	}
	return n, nil
}
