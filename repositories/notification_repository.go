package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yurayurastudio/studio_backend/config"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		collection: db.Collection(config.NotificationsCollection),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	n.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByUser returns the newest notifications first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []*models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: notification %s", services.ErrNotFound, id.Hex())
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": userID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

type NotificationSettingsRepository struct {
	collection *mongo.Collection
}

func NewNotificationSettingsRepository(db *mongo.Database) *NotificationSettingsRepository {
	return &NotificationSettingsRepository{
		collection: db.Collection(config.NotificationSettingsCollection),
	}
}

func (r *NotificationSettingsRepository) Get(ctx context.Context, userID primitive.ObjectID) (*models.NotificationSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var settings models.NotificationSettings
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *NotificationSettingsRepository) Upsert(ctx context.Context, settings *models.NotificationSettings) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"userId": settings.UserID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
