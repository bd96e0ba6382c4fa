package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by point lookups that match no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Repositories groups the repositories bound to a single transaction.
type Repositories struct {
	Users         UserRepository
	Activities    ActivityRepository
	Registrations RegistrationRepository
}

// Store runs units of work. The transaction handed to fn commits when fn
// returns nil and rolls back otherwise.
type Store interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
