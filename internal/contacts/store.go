package contacts

import (
	"context"
	"math"
)

// Page is a 1-indexed, fixed-size window over the ordered result set.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of records preceding the page. It saturates at
// math.MaxInt so a huge page number lands past the end instead of wrapping.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Store is the persistence contract the Service runs on.
//
// GetByID returns an error matching ErrNotFound when no record has the id.
// Upsert inserts when c.ID is zero, assigning the id, and otherwise replaces
// the stored record, returning an error matching ErrNotFound if it vanished.
// DeleteByID is silent on a missing id.
type Store interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*Contact, error)
	ScanPage(ctx context.Context, page Page) ([]*Contact, error)
	ScanPageFiltered(ctx context.Context, filter Filter, page Page) ([]*Contact, error)
	Upsert(ctx context.Context, c *Contact) (*Contact, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
