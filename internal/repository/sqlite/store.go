package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"volunteer-hub/internal/repository"
)

// Store hands out repositories bound to a single transaction.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(repos repository.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(bind(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func bind(q dbtx) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(q),
		Activities:    NewActivityRepository(q),
		Registrations: NewRegistrationRepository(q),
	}
}
