package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

// ActivityInput is an activity form submission before parsing.
type ActivityInput struct {
	Title         string
	Description   string
	Date          string
	StartTime     string
	EndTime       string
	Location      string
	MaxVolunteers string
}

// ActivityListing is an activity annotated with the viewer's registration
// status. Status is empty when the viewer is anonymous or not registered.
type ActivityListing struct {
	domain.Activity
	Status domain.RegistrationStatus
}

// Dashboard is everything the admin page shows.
type Dashboard struct {
	Activities    []domain.Activity
	Registrations []domain.RegistrationDetail
}

// ActivityService coordinates activity level operations backed by repositories.
type ActivityService interface {
	// List returns all activities. A zero viewerID means anonymous.
	List(ctx context.Context, viewerID int64) ([]ActivityListing, error)
	Get(ctx context.Context, id int64) (*domain.Activity, error)
	Create(ctx context.Context, input ActivityInput) (*domain.Activity, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type activityService struct {
	store repository.Store
}

func NewActivityService(store repository.Store) ActivityService {
	return &activityService{store: store}
}

func (s *activityService) List(ctx context.Context, viewerID int64) ([]ActivityListing, error) {
	var (
		activities    []domain.Activity
		registrations []domain.Registration
	)
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		if activities, err = repos.Activities.List(ctx); err != nil {
			return err
		}
		if viewerID == 0 {
			return nil
		}
		registrations, err = repos.Registrations.ListByUser(ctx, viewerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// the oldest registration wins when duplicates exist
	statuses := make(map[int64]domain.RegistrationStatus, len(registrations))
	for _, r := range registrations {
		if _, ok := statuses[r.ActivityID]; !ok {
			statuses[r.ActivityID] = r.Status
		}
	}

	listings := make([]ActivityListing, len(activities))
	for i := range activities {
		listings[i] = ActivityListing{
			Activity: activities[i],
			Status:   statuses[activities[i].ID],
		}
	}
	return listings, nil
}

func (s *activityService) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	var activity *domain.Activity
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		activity, err = repos.Activities.Get(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Create(ctx context.Context, input ActivityInput) (*domain.Activity, error) {
	activity, err := parseActivity(input)
	if err != nil {
		return nil, err
	}

	err = s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		_, err := repos.Activities.Create(ctx, activity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		if dashboard.Activities, err = repos.Activities.List(ctx); err != nil {
			return err
		}
		dashboard.Registrations, err = repos.Registrations.ListDetailed(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func parseActivity(input ActivityInput) (*domain.Activity, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, input.Date)
	}

	activity := &domain.Activity{
		Title:       title,
		Description: input.Description,
		Date:        date,
		StartTime:   strings.TrimSpace(input.StartTime),
		EndTime:     strings.TrimSpace(input.EndTime),
		Location:    input.Location,
	}

	if raw := strings.TrimSpace(input.MaxVolunteers); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCapacity, raw)
		}
		activity.MaxVolunteers = &n
	}

	return activity, nil
}
