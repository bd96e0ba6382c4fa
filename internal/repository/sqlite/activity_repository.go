package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

const activityColumns = `id, title, description, date, start_time, end_time, location, max_volunteers`

type ActivityRepository struct {
	db dbtx
}

func NewActivityRepository(db dbtx) repository.ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO activities (title, description, date, start_time, end_time, location, max_volunteers)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		activity.Title,
		activity.Description,
		activity.Date.UTC(),
		activity.StartTime,
		activity.EndTime,
		activity.Location,
		nullInt(activity.MaxVolunteers),
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity last insert id: %w", err)
	}
	activity.ID = id
	return id, nil
}

func (r *ActivityRepository) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
	return scanActivity(row)
}

// GetByTitle returns the lowest-id activity with the given title.
func (r *ActivityRepository) GetByTitle(ctx context.Context, title string) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE title = ? ORDER BY id LIMIT 1`, title)
	return scanActivity(row)
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		activity domain.Activity
		capacity sql.NullInt64
	)
	if err := row.Scan(
		&activity.ID,
		&activity.Title,
		&activity.Description,
		&activity.Date,
		&activity.StartTime,
		&activity.EndTime,
		&activity.Location,
		&capacity,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	if capacity.Valid {
		v := int(capacity.Int64)
		activity.MaxVolunteers = &v
	}
	return &activity, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
