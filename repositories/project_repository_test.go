package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/repositories/testutil"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProjectRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewProjectRepository(testDB.DB)
	ctx := context.Background()

	user := primitive.NewObjectID()
	other := primitive.NewObjectID()
	total := int64(1000)

	asDirector := &models.Project{Name: "Directing", Status: models.ProjectInProgress, TotalReward: &total, DirectorID: &user}
	asSales := &models.Project{Name: "Selling", Status: models.ProjectInProgress, SalesID: &user}
	asCreator := &models.Project{Name: "Creating", Status: models.ProjectNotStarted, AssignedUsers: []primitive.ObjectID{other, user}}
	unrelated := &models.Project{Name: "Elsewhere", Status: models.ProjectNotStarted, DirectorID: &other}

	for _, p := range []*models.Project{asDirector, asSales, asCreator, unrelated} {
		require.NoError(t, repo.Create(ctx, p))
		require.False(t, p.ID.IsZero())
	}

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, asDirector.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Directing", got.Name)
		assert.Equal(t, int64(1000), got.Reward())

		missing, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find by participant in id order", func(t *testing.T) {
		projects, err := repo.FindByParticipant(ctx, user)
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, asDirector.ID, projects[0].ID)
		assert.Equal(t, asSales.ID, projects[1].ID)
		assert.Equal(t, asCreator.ID, projects[2].ID)
	})

	t.Run("unset reward stays nil", func(t *testing.T) {
		got, err := repo.FindByID(ctx, asSales.ID)
		require.NoError(t, err)
		assert.Nil(t, got.TotalReward)
		assert.Equal(t, int64(0), got.Reward())
	})

	t.Run("mark reward distributed once", func(t *testing.T) {
		ok, err := repo.MarkRewardDistributed(ctx, asDirector.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.MarkRewardDistributed(ctx, asDirector.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.FindByID(ctx, asDirector.ID)
		require.NoError(t, err)
		assert.True(t, got.RewardDistributed)
	})

	t.Run("replace and delete", func(t *testing.T) {
		unrelated.Name = "Renamed"
		require.NoError(t, repo.Replace(ctx, unrelated))

		got, err := repo.FindByID(ctx, unrelated.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)

		require.NoError(t, repo.Delete(ctx, unrelated.ID))
		assert.ErrorIs(t, repo.Delete(ctx, unrelated.ID), services.ErrNotFound)
	})
}
