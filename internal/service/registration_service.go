package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

// Credentials identify an anonymous registrant.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationService handles volunteer sign-ups for activities and their review.
type RegistrationService interface {
	IsRegistered(ctx context.Context, userID, activityID int64) (bool, error)
	// Register records a pending registration. With a non-nil principal the
	// credentials are ignored and an existing registration is rejected with
	// ErrAlreadyRegistered. Without one, the credentials select or create the
	// acting user and no duplicate check is made.
	Register(ctx context.Context, activityID int64, principal *domain.User, creds Credentials) (*domain.Registration, error)
	SetStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (*domain.Registration, error)
}

type registrationService struct {
	store repository.Store
	now   func() time.Time
}

func NewRegistrationService(store repository.Store) RegistrationService {
	return &registrationService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *registrationService) IsRegistered(ctx context.Context, userID, activityID int64) (bool, error) {
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		_, err := repos.Registrations.Find(ctx, userID, activityID)
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *registrationService) Register(ctx context.Context, activityID int64, principal *domain.User, creds Credentials) (*domain.Registration, error) {
	registration := &domain.Registration{
		ActivityID: activityID,
		Status:     domain.RegistrationStatusPending,
	}

	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Activities.Get(ctx, activityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrActivityNotFound
			}
			return err
		}

		if principal != nil {
			if _, err := repos.Registrations.Find(ctx, principal.ID, activityID); err == nil {
				return ErrAlreadyRegistered
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			registration.UserID = principal.ID
		} else {
			email := strings.TrimSpace(creds.Email)
			user, err := repos.Users.GetByEmail(ctx, email)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				hash, err := hashPassword(creds.Password)
				if err != nil {
					return err
				}
				user = &domain.User{Email: email, PasswordHash: hash}
				if _, err := repos.Users.Create(ctx, user); err != nil {
					return err
				}
			case err != nil:
				return err
			case !checkPassword(user.PasswordHash, creds.Password):
				return ErrInvalidPassword
			}
			registration.UserID = user.ID
		}

		registration.RegistrationDate = s.now()
		_, err := repos.Registrations.Create(ctx, registration)
		return err
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

func (s *registrationService) SetStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var registration *domain.Registration
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		if err := repos.Registrations.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		var err error
		registration, err = repos.Registrations.Get(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return registration, nil
}
