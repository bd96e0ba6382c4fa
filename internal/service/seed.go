package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

// AdminAccount is the administrator created at startup.
type AdminAccount struct {
	Email    string
	Password string
}

// SeedReport tells the caller what a seed run inserted.
type SeedReport struct {
	AdminCreated      bool
	ActivitiesCreated int
}

// Seed inserts the administrator and the sample activities. Activities are
// matched on title, so running it again adds nothing new.
func Seed(ctx context.Context, store repository.Store, admin AdminAccount) (SeedReport, error) {
	var report SeedReport
	email := strings.TrimSpace(admin.Email)
	if email == "" || admin.Password == "" {
		return report, errors.New("seed admin email and password are required")
	}

	err := store.WithinTx(ctx, func(repos repository.Repositories) error {
		_, err := repos.Users.GetByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			hash, err := hashPassword(admin.Password)
			if err != nil {
				return err
			}
			if _, err := repos.Users.Create(ctx, &domain.User{Email: email, PasswordHash: hash, IsAdmin: true}); err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			report.AdminCreated = true
		case err != nil:
			return err
		}

		for _, activity := range SampleActivities() {
			_, err := repos.Activities.GetByTitle(ctx, activity.Title)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if _, err := repos.Activities.Create(ctx, &activity); err != nil {
				return fmt.Errorf("create activity %q: %w", activity.Title, err)
			}
			report.ActivitiesCreated++
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}
	return report, nil
}

// SampleActivities returns the fixed baseline activities.
func SampleActivities() []domain.Activity {
	capacity := func(n int) *int { return &n }
	day := func(month time.Month, d int) time.Time { return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC) }

	return []domain.Activity{
		{
			Title:         "Awareness Booth at Tel Aviv University",
			Description:   "Setting up a booth to distribute flyers, answer questions, and engage with students about the hostages' situation.",
			Date:          day(time.April, 25),
			StartTime:     "11:00",
			EndTime:       "14:00",
			Location:      "Tel Aviv University Campus",
			MaxVolunteers: capacity(10),
		},
		{
			Title:         "Volunteer Visit to Hostage Families",
			Description:   "A small group of volunteers will visit families of the hostages to offer emotional support and assistance with errands or logistics.",
			Date:          day(time.April, 27),
			StartTime:     "16:00",
			EndTime:       "18:00",
			Location:      "Various locations (to be assigned)",
			MaxVolunteers: capacity(5),
		},
		{
			Title:         "Evening Rally and Candlelight Vigil in Jerusalem",
			Description:   "Participate in an organized rally and vigil to show solidarity and raise public awareness. Volunteers will help with setup, crowd guidance, and cleanup.",
			Date:          day(time.April, 30),
			StartTime:     "19:30",
			EndTime:       "21:30",
			Location:      "Jerusalem City Center",
			MaxVolunteers: capacity(20),
		},
	}
}
