package contacts

import (
	"context"
	"errors"
	"fmt"
)

// Service enforces the contact rules on top of a Store. It holds no state of
// its own and is safe for concurrent use.
//
// Existence checks and the writes that follow them are separate store calls.
// A concurrent writer can slip in between; the SQL store narrows the window by
// updating with WHERE id = ? and reporting ErrNotFound when nothing matched.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindByID returns the contact with the given id.
func (s *Service) FindByID(ctx context.Context, id int64) (*Contact, error) {
	c, err := s.store.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("find contact %d: %w", id, err)
	}
	return c, nil
}

// FindAll returns page pageNumber (1-indexed) of all contacts in store order.
// A page past the end is empty, not an error.
func (s *Service) FindAll(ctx context.Context, pageNumber, pageSize int) ([]*Contact, error) {
	page, err := newPage(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ScanPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return list, nil
}

// FindAllByName returns page pageNumber of the contacts whose name contains
// name as a case-sensitive substring.
func (s *Service) FindAllByName(ctx context.Context, name string, pageNumber, pageSize int) ([]*Contact, error) {
	return s.FindAllMatching(ctx, FilterFrom(Contact{Name: name}), pageNumber, pageSize)
}

// FindAllMatching returns page pageNumber of the contacts matching filter.
func (s *Service) FindAllMatching(ctx context.Context, filter Filter, pageNumber, pageSize int) ([]*Contact, error) {
	page, err := newPage(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ScanPageFiltered(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return list, nil
}

// Save creates a new contact and returns it with its store-assigned id.
// A caller-supplied id that is already stored is rejected with
// AlreadyExistsError; an unknown one is discarded.
func (s *Service) Save(ctx context.Context, c *Contact) (*Contact, error) {
	if msgs := Validate(c); len(msgs) > 0 {
		return nil, newBadResource("failed to save contact", msgs...)
	}

	in := *c
	if in.Persisted() {
		exists, err := s.store.ExistsByID(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("save contact: %w", err)
		}
		if exists {
			return nil, &AlreadyExistsError{ID: in.ID}
		}
		in.ID = 0
	}

	saved, err := s.store.Upsert(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}
	return saved, nil
}

// Update replaces every field of the stored contact with c's. The caller is
// responsible for setting c.ID.
func (s *Service) Update(ctx context.Context, c *Contact) error {
	if msgs := Validate(c); len(msgs) > 0 {
		return newBadResource("failed to update contact", msgs...)
	}

	exists, err := s.store.ExistsByID(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	if !exists {
		return &NotFoundError{ID: c.ID}
	}

	return s.write(ctx, c, "update")
}

// UpdateAddress overwrites the four address fields of the stored contact,
// empty values included, and leaves every other field untouched. The update
// is applied to the current stored state.
func (s *Service) UpdateAddress(ctx context.Context, id int64, a Address) error {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if msgs := ValidateAddress(&a); len(msgs) > 0 {
		return newBadResource("failed to update contact address", msgs...)
	}

	c.SetAddress(a)
	return s.write(ctx, c, "update address of")
}

// DeleteByID removes the contact with the given id. Deleting an absent id
// reports NotFoundError rather than succeeding silently.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	if !exists {
		return &NotFoundError{ID: id}
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of contacts.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// write upserts an already persisted contact.
func (s *Service) write(ctx context.Context, c *Contact, op string) error {
	_, err := s.store.Upsert(ctx, c)
	if errors.Is(err, ErrNotFound) {
		return &NotFoundError{ID: c.ID}
	}
	if err != nil {
		return fmt.Errorf("%s contact %d: %w", op, c.ID, err)
	}
	return nil
}

func newPage(number, size int) (Page, error) {
	var msgs []string
	if number < 1 {
		msgs = append(msgs, "page number must be at least 1")
	}
	if size < 1 {
		msgs = append(msgs, "page size must be at least 1")
	}
	if len(msgs) > 0 {
		return Page{}, newBadResource("invalid page request", msgs...)
	}
	return Page{Number: number, Size: size}, nil
}
