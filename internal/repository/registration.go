package repository

import (
	"context"

	"volunteer-hub/internal/domain"
)

// RegistrationRepository exposes persistence operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *domain.Registration) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Registration, error)
	// Find returns the first registration for the pair, or ErrNotFound.
	Find(ctx context.Context, userID, activityID int64) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error)
	ListDetailed(ctx context.Context) ([]domain.RegistrationDetail, error)
}
