package service

import "errors"

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidPassword is returned when an anonymous registration names an
	// existing account but supplies the wrong password.
	ErrInvalidPassword = errors.New("invalid password for existing email")
	// ErrPasswordMismatch is returned when the signup confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmailTaken is returned when attempting to sign up with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyRegistered    = errors.New("already registered for activity")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTitleRequired        = errors.New("activity title is required")
	ErrInvalidDate          = errors.New("invalid activity date")
	ErrInvalidCapacity      = errors.New("invalid max volunteers")
	ErrInvalidStatus        = errors.New("invalid registration status")
)
