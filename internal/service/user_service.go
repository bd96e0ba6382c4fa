package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

// SignUpInput carries a signup form submission.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// UserService describes user lifecycle operations.
type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}

	err = s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Users.GetByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if _, err := repos.Users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user *domain.User
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
