package store

import (
	"context"
	"slices"
	"sync"

	"github.com/joestump/contact-app/internal/contacts"
)

// MemoryStore implements contacts.Store in process memory. Records are kept
// in ascending id order; returned contacts are copies.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	ids    []int64
	byID   map[int64]contacts.Contact
}

// NewMemoryStore returns a MemoryStore seeded with cs. Seeds without an id are
// assigned one.
func NewMemoryStore(cs ...contacts.Contact) *MemoryStore {
	s := &MemoryStore{byID: make(map[int64]contacts.Contact, len(cs))}
	for _, c := range cs {
		if c.ID == 0 {
			s.nextID++
			c.ID = s.nextID
		}
		s.put(c)
	}
	return s
}

// put stores c, keeping ids sorted. Callers hold mu.
func (s *MemoryStore) put(c contacts.Contact) {
	if _, ok := s.byID[c.ID]; !ok {
		i, _ := slices.BinarySearch(s.ids, c.ID)
		s.ids = slices.Insert(s.ids, i, c.ID)
	}
	s.byID[c.ID] = c
	s.nextID = max(s.nextID, c.ID)
}

func (s *MemoryStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*contacts.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) ScanPage(ctx context.Context, page contacts.Page) ([]*contacts.Contact, error) {
	return s.ScanPageFiltered(ctx, contacts.Filter{}, page)
}

func (s *MemoryStore) ScanPageFiltered(_ context.Context, filter contacts.Filter, page contacts.Page) ([]*contacts.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []*contacts.Contact{}
	skip := page.Offset()
	for _, id := range s.ids {
		if len(list) == page.Size {
			break
		}
		c := s.byID[id]
		if !filter.Matches(&c) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		list = append(list, &c)
	}
	return list, nil
}

func (s *MemoryStore) Upsert(_ context.Context, c *contacts.Contact) (*contacts.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *c
	if saved.ID == 0 {
		s.nextID++
		saved.ID = s.nextID
	} else if _, ok := s.byID[saved.ID]; !ok {
		return nil, ErrNotFound
	}
	s.put(saved)
	return &saved, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return nil
	}
	delete(s.byID, id)
	if i, found := slices.BinarySearch(s.ids, id); found {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.byID)), nil
}
