// Package store implements contacts.Store on top of sqlx and in memory.
package store

import "github.com/joestump/contact-app/internal/contacts"

// ErrNotFound is returned when a requested contact does not exist.
var ErrNotFound = contacts.ErrNotFound

// Compile-time interface checks.
var (
	_ contacts.Store = (*ContactStore)(nil)
	_ contacts.Store = (*MemoryStore)(nil)
)
