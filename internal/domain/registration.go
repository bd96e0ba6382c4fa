package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// Registration links one user to one activity.
type Registration struct {
	ID               int64
	UserID           int64
	ActivityID       int64
	Status           RegistrationStatus
	RegistrationDate time.Time
}

// RegistrationDetail is a registration joined with the names an admin needs to act on it.
type RegistrationDetail struct {
	Registration
	UserEmail     string
	ActivityTitle string
}
