package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = Migrate(db, false)
	require.NoError(t, err)
	return db
}

func TestMigrateReportsLatestVersion(t *testing.T) {
	db := newTestDB(t)

	version, err := Migrate(db, false)
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
}

func TestMigrateResetDiscardsRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	_, err := users.Create(ctx, &domain.User{Email: "a@b.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = Migrate(db, true)
	require.NoError(t, err)

	_, err = users.GetByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	user := &domain.User{Email: "admin@example.com", PasswordHash: "hash", IsAdmin: true}
	id, err := users.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, "hash", got.PasswordHash)

	got, err = users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	_, err = users.Create(ctx, &domain.User{Email: "admin@example.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = users.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	activities := NewActivityRepository(db)

	capacity := 10
	date := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)
	first := &domain.Activity{
		Title:         "Booth",
		Description:   "Flyers",
		Date:          date,
		StartTime:     "11:00",
		EndTime:       "14:00",
		Location:      "Campus",
		MaxVolunteers: &capacity,
	}
	_, err := activities.Create(ctx, first)
	require.NoError(t, err)

	second := &domain.Activity{Title: "Vigil", Date: date.AddDate(0, 0, 5)}
	_, err = activities.Create(ctx, second)
	require.NoError(t, err)

	got, err := activities.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Booth", got.Title)
	assert.True(t, got.Date.Equal(date))
	require.NotNil(t, got.MaxVolunteers)
	assert.Equal(t, 10, *got.MaxVolunteers)

	got, err = activities.GetByTitle(ctx, "Vigil")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Nil(t, got.MaxVolunteers)

	list, err := activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	_, err = activities.GetByTitle(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistrationRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repos := bind(db)

	user := &domain.User{Email: "v@example.com", PasswordHash: "x"}
	_, err := repos.Users.Create(ctx, user)
	require.NoError(t, err)
	activity := &domain.Activity{Title: "Booth", Date: time.Now()}
	_, err = repos.Activities.Create(ctx, activity)
	require.NoError(t, err)

	_, err = repos.Registrations.Find(ctx, user.ID, activity.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	registration := &domain.Registration{UserID: user.ID, ActivityID: activity.ID}
	_, err = repos.Registrations.Create(ctx, registration)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusPending, registration.Status)

	found, err := repos.Registrations.Find(ctx, user.ID, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, registration.ID, found.ID)

	require.NoError(t, repos.Registrations.UpdateStatus(ctx, registration.ID, domain.RegistrationStatusApproved))
	got, err := repos.Registrations.Get(ctx, registration.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusApproved, got.Status)
	assert.True(t, got.RegistrationDate.Equal(registration.RegistrationDate))

	err = repos.Registrations.UpdateStatus(ctx, registration.ID+1, domain.RegistrationStatusRejected)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mine, err := repos.Registrations.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	details, err := repos.Registrations.ListDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "v@example.com", details[0].UserEmail)
	assert.Equal(t, "Booth", details[0].ActivityTitle)
}

func TestStoreWithinTxRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := NewStore(db)
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Users.Create(ctx, &domain.User{Email: "gone@example.com", PasswordHash: "x"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.WithinTx(ctx, func(repos repository.Repositories) error {
		_, err := repos.Users.GetByEmail(ctx, "gone@example.com")
		return err
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreWithinTxCommits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	err := store.WithinTx(ctx, func(repos repository.Repositories) error {
		_, err := repos.Users.Create(ctx, &domain.User{Email: "kept@example.com", PasswordHash: "x"})
		return err
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).GetByEmail(ctx, "kept@example.com")
	assert.NoError(t, err)
}
