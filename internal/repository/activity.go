package repository

import (
	"context"

	"volunteer-hub/internal/domain"
)

// ActivityRepository exposes persistence operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Activity, error)
	GetByTitle(ctx context.Context, title string) (*domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
}
