package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/domain/concern"
	"grievance/internal/domain/notification"
	"grievance/internal/domain/user"
	"grievance/internal/shared/db"
	"grievance/internal/shared/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := newTestUser(t, "21-12345", "juan.delacruz@example.edu")
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	t.Run("by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "juan.delacruz@example.edu", found.Email().String())
		assert.Equal(t, "21-12345", found.SRCode().String())
	})

	t.Run("by email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "juan.delacruz@example.edu")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("by sr code", func(t *testing.T) {
		found, err := repo.GetBySRCode(ctx, "21-12345")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUserRepository_GetByGoogleID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := newTestUser(t, "21-23456", "maria.santos@example.edu")
	require.NoError(t, u.LinkGoogleAccount("google-sub-123"))
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.GetByGoogleID(ctx, "google-sub-123")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())

	_, err = repo.GetByGoogleID(ctx, "unknown-sub")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := newTestUser(t, "21-34567", "pedro.reyes@example.edu")
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, u.UpdateProfile("Pedro", "Reyes Jr", "BS Information Technology", 3))
	u.Deactivate()
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Reyes Jr", found.LastName())
	assert.Equal(t, 3, found.YearLevel())
	assert.False(t, found.IsActive())
}

func TestUserRepository_Delete_Cascades(t *testing.T) {
	database := setupTestDB(t)
	userRepo := NewUserRepository(database)
	concernRepo := NewConcernRepository(database)
	historyRepo := NewStatusHistoryRepository(database)
	commentRepo := NewCommentRepository(database)
	notificationRepo := NewNotificationRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	u := newTestUser(t, "21-45678", "ana.cruz@example.edu")
	require.NoError(t, userRepo.Create(ctx, u))

	c := newTestConcern(t, u.ID(), "To be deleted with owner")
	require.NoError(t, tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return concernRepo.Save(txCtx, c)
	}))

	entry, err := concern.NewStatusHistoryEntry(c.ID(), nil, c.Status(), u.ID(), "Concern created")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Append(ctx, entry))

	comment, err := concern.NewComment(c.ID(), u.ID(), "Any update on this?", false)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, comment))

	n, err := notification.NewNotification(u.ID(), notification.TypeConcernCreated, "Concern received", "We got it")
	require.NoError(t, err)
	n.SetConcernID(c.ID())
	require.NoError(t, notificationRepo.Create(ctx, n))

	require.NoError(t, userRepo.Delete(ctx, u.ID()))

	_, err = userRepo.GetByID(ctx, u.ID())
	assert.True(t, errors.IsNotFoundError(err))

	_, err = concernRepo.GetByID(ctx, c.ID())
	assert.True(t, errors.IsNotFoundError(err))

	history, err := historyRepo.ListByConcern(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, history)

	comments, err := commentRepo.ListByConcern(ctx, c.ID(), true)
	require.NoError(t, err)
	assert.Empty(t, comments)

	count, err := notificationRepo.CountUnread(ctx, u.ID())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_Delete_MissingUser(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)

	err := repo.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	students := []struct{ code, email string }{
		{"21-11111", "a@example.edu"},
		{"21-22222", "b@example.edu"},
		{"21-33333", "c@example.edu"},
	}
	for _, s := range students {
		require.NoError(t, repo.Create(ctx, newTestUser(t, s.code, s.email)))
	}

	t.Run("paginated", func(t *testing.T) {
		list, total, err := repo.List(ctx, user.ListFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, list, 2)
	})

	t.Run("search by sr code", func(t *testing.T) {
		list, total, err := repo.List(ctx, user.ListFilter{Page: 1, PageSize: 10, Search: "21-22222"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "b@example.edu", list[0].Email().String())
	})

	t.Run("filter by role", func(t *testing.T) {
		list, total, err := repo.List(ctx, user.ListFilter{Page: 1, PageSize: 10, Role: "admin"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, list)
	})
}

func TestUserRepository_Exists(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "21-55555", "exists@example.edu")))

	exists, err := repo.ExistsByEmail(ctx, "exists@example.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nope@example.edu")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsBySRCode(ctx, "21-55555")
	require.NoError(t, err)
	assert.True(t, exists)
}
