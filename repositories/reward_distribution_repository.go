package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/yurayurastudio/studio_backend/config"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RewardDistributionRepository keeps one document per project, guarded by a
// unique index on projectId
type RewardDistributionRepository struct {
	collection *mongo.Collection
}

func NewRewardDistributionRepository(db *mongo.Database) *RewardDistributionRepository {
	return &RewardDistributionRepository{
		collection: db.Collection(config.RewardDistributionsCollection),
	}
}

func (r *RewardDistributionRepository) Get(ctx context.Context, projectID primitive.ObjectID) (*models.RewardDistribution, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var dist models.RewardDistribution
	if err := r.collection.FindOne(ctx, bson.M{"projectId": projectID}).Decode(&dist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &dist, nil
}

// Upsert writes the whole split in a single findAndModify. A finalized record
// does not match the filter, so the implied insert collides with the unique
// index and the write is rejected.
func (r *RewardDistributionRepository) Upsert(ctx context.Context, dist *models.RewardDistribution) (*models.RewardDistribution, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"projectId": dist.ProjectID,
		"finalized": bson.M{"$ne": true},
	}
	update := bson.M{
		"$set": bson.M{
			"operationPercentage": dist.OperationPercentage,
			"salesPercentage":     dist.SalesPercentage,
			"directorPercentage":  dist.DirectorPercentage,
			"creatorPercentage":   dist.CreatorPercentage,
			"updatedAt":           dist.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"finalized": false,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.RewardDistribution
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if mongo.IsDuplicateKeyError(err) {
		// Either the record is finalized or a concurrent first write inserted
		// it. Once the document exists only the finalized case collides again.
		err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
		if mongo.IsDuplicateKeyError(err) {
			return nil, services.ErrDistributionFinalized
		}
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Finalize freezes the split in force, inserting the defaults when the project
// never had one stored
func (r *RewardDistributionRepository) Finalize(ctx context.Context, projectID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"projectId": projectID}
	update := bson.M{
		"$set": bson.M{
			"finalized": true,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"operationPercentage": models.OperationPercentage,
			"salesPercentage":     models.DefaultSalesPercentage,
			"directorPercentage":  models.DefaultDirectorPercentage,
			"creatorPercentage":   models.DefaultCreatorPercentage,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// Lost an insert race with a concurrent write; the document exists now
		_, err = r.collection.UpdateOne(ctx, filter, update, opts)
	}
	return err
}

func (r *RewardDistributionRepository) Delete(ctx context.Context, projectID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"projectId": projectID})
	return err
}
