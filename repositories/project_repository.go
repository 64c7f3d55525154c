package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yurayurastudio/studio_backend/config"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepository struct {
	collection *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{
		collection: db.Collection(config.ProjectsCollection),
	}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var project models.Project
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// FindByParticipant matches the user in any of the three role fields
func (r *ProjectRepository) FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"directorId": userID},
			{"salesId": userID},
			{"assignedUsers": userID},
		},
	}
	return r.find(ctx, filter)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if project.AssignedUsers == nil {
		project.AssignedUsers = []primitive.ObjectID{}
	}
	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return err
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProjectRepository) Replace(ctx context.Context, project *models.Project) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if project.AssignedUsers == nil {
		project.AssignedUsers = []primitive.ObjectID{}
	}
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: project %s", services.ErrNotFound, project.ID.Hex())
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: project %s", services.ErrNotFound, id.Hex())
	}
	return nil
}

// MarkRewardDistributed only matches while the flag is unset, so concurrent
// callers see exactly one success
func (r *ProjectRepository) MarkRewardDistributed(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "rewardDistributed": bson.M{"$ne": true}}
	update := bson.M{
		"$set": bson.M{
			"rewardDistributed": true,
			"updatedAt":         time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M) ([]*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []*models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
