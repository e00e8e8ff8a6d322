package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"report2clean/config"
	"report2clean/database"
	"report2clean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInboxRepo implements InboxRepository using MongoDB.
type MongoInboxRepo struct {
	coll *mongo.Collection
}

// NewMongoInboxRepo creates a new InboxRepository using MongoDB.
func NewMongoInboxRepo() InboxRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("notifications")
	repo := &MongoInboxRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inbox indexes: %v\n", err)
	}
	return repo
}

func (r *MongoInboxRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Append is a single upsert-and-push, so the first notification for a user
// creates the inbox document on the fly.
func (r *MongoInboxRepo) Append(ctx context.Context, ownerID string, entry models.NotificationEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push":        bson.M{"notifications": entry},
		"$setOnInsert": bson.M{"ownerId": ownerID},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, bson.M{"ownerId": ownerID}, update, opts); err != nil {
		return fmt.Errorf("failed to append notification for %s: %w", ownerID, err)
	}
	return nil
}

func (r *MongoInboxRepo) MarkRead(ctx context.Context, ownerID, entryID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID, "notifications.id": entryID}
	update := bson.M{"$set": bson.M{"notifications.$.isRead": true}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", entryID, err)
	}
	if result.MatchedCount == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *MongoInboxRepo) MarkAllRead(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"notifications.$[].isRead": true}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"ownerId": ownerID}, update); err != nil {
		return fmt.Errorf("failed to mark all notifications read for %s: %w", ownerID, err)
	}
	return nil
}

// Latest unwinds the embedded array so mongo does the recency sort and
// limit instead of shipping the whole inbox over the wire.
func (r *MongoInboxRepo) Latest(ctx context.Context, ownerID string, n int64) ([]models.NotificationEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"ownerId": ownerID}}},
		bson.D{{Key: "$unwind", Value: "$notifications"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "notifications.createdAt", Value: -1}}}},
		bson.D{{Key: "$limit", Value: n}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$notifications"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest notifications for %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	entries := []models.NotificationEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return entries, nil
}
