package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

const registrationColumns = `id, user_id, activity_id, status, registration_date`

type RegistrationRepository struct {
	db dbtx
}

func NewRegistrationRepository(db dbtx) repository.RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *domain.Registration) (int64, error) {
	if registration.Status == "" {
		registration.Status = domain.RegistrationStatusPending
	}
	if registration.RegistrationDate.IsZero() {
		registration.RegistrationDate = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO registrations (user_id, activity_id, status, registration_date)
VALUES (?, ?, ?, ?)`,
		registration.UserID,
		registration.ActivityID,
		string(registration.Status),
		registration.RegistrationDate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert registration: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("registration last insert id: %w", err)
	}
	registration.ID = id
	return id, nil
}

func (r *RegistrationRepository) Get(ctx context.Context, id int64) (*domain.Registration, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = ?`, id)
	return scanRegistration(row)
}

func (r *RegistrationRepository) Find(ctx context.Context, userID, activityID int64) (*domain.Registration, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+registrationColumns+`
FROM registrations
WHERE user_id = ? AND activity_id = ?
ORDER BY id
LIMIT 1`,
		userID,
		activityID,
	)
	return scanRegistration(row)
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE registrations SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("registration %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}
	defer rows.Close()

	var registrations []domain.Registration
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, *registration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return registrations, nil
}

func (r *RegistrationRepository) ListDetailed(ctx context.Context) ([]domain.RegistrationDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.activity_id, r.status, r.registration_date, u.email, a.title
FROM registrations r
JOIN users u ON u.id = r.user_id
JOIN activities a ON a.id = r.activity_id
ORDER BY r.id`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var details []domain.RegistrationDetail
	for rows.Next() {
		var (
			detail domain.RegistrationDetail
			status string
		)
		if err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.ActivityID,
			&status,
			&detail.RegistrationDate,
			&detail.UserEmail,
			&detail.ActivityTitle,
		); err != nil {
			return nil, fmt.Errorf("scan registration detail: %w", err)
		}
		detail.Status = domain.RegistrationStatus(status)
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registration details: %w", err)
	}
	return details, nil
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var (
		registration domain.Registration
		status       string
	)
	if err := row.Scan(
		&registration.ID,
		&registration.UserID,
		&registration.ActivityID,
		&status,
		&registration.RegistrationDate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("registration: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	registration.Status = domain.RegistrationStatus(status)
	return &registration, nil
}
