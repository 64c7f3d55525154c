package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/repositories/testutil"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotificationRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewNotificationRepository(testDB.DB)
	ctx := context.Background()

	user := primitive.NewObjectID()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		n := &models.Notification{
			UserID:    user,
			Title:     "Update",
			Message:   "msg",
			Type:      models.NotificationProjectUpdated,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, n))
		require.False(t, n.ID.IsZero())
	}

	list, err := repo.ListByUser(ctx, user, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))

	require.NoError(t, repo.MarkRead(ctx, user, list[0].ID))
	assert.ErrorIs(t, repo.MarkRead(ctx, primitive.NewObjectID(), list[1].ID), services.ErrNotFound)

	list, err = repo.ListByUser(ctx, user, 10)
	require.NoError(t, err)
	assert.True(t, list[0].IsRead)
	assert.False(t, list[1].IsRead)

	unread, err := repo.CountUnread(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	other := primitive.NewObjectID()
	require.NoError(t, repo.Create(ctx, &models.Notification{UserID: other, Title: "Other", Type: models.NotificationProjectCreated, CreatedAt: time.Now()}))

	updated, err := repo.MarkAllRead(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	unread, err = repo.CountUnread(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, unread)

	unread, err = repo.CountUnread(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	updated, err = repo.MarkAllRead(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestNotificationSettingsRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewNotificationSettingsRepository(testDB.DB)
	ctx := context.Background()

	user := primitive.NewObjectID()
	got, err := repo.Get(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, got)

	settings := models.DefaultNotificationSettings(user)
	settings.NotifyProjectUpdated = false
	require.NoError(t, repo.Upsert(ctx, settings))
	require.NoError(t, repo.Upsert(ctx, settings))

	got, err = repo.Get(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.NotifyProjectUpdated)
	assert.True(t, got.NotifyRewardDistributed)
}

func TestUserRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := &models.User{Name: "Aoi", Email: "aoi@example.com", Role: models.RoleCreator, PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	dup := &models.User{Name: "Other", Email: "aoi@example.com", Role: models.RoleSales}
	assert.ErrorIs(t, repo.Create(ctx, dup), services.ErrConflict)

	got, err := repo.FindByEmail(ctx, "aoi@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, repo.UpdateFCMToken(ctx, user.ID, "device"))
	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "device", got.FCMToken)

	users, err := repo.FindByIDs(ctx, []primitive.ObjectID{user.ID, primitive.NewObjectID()})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
