package domain

import "time"

// User represents a volunteer or administrator account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
