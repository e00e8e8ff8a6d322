package preferenceRepo

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

// MongoPreferenceRepo implements PreferenceRepository using MongoDB.
type MongoPreferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoPreferenceRepo creates a new PreferenceRepository using MongoDB.
func NewMongoPreferenceRepo() PreferenceRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("preferences")
	repo := &MongoPreferenceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create preference indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPreferenceRepo) ensureIndexes() error {
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

// Resolve is a single atomic find-or-create: $setOnInsert writes the
// defaults only when the upsert inserts, so concurrent resolves for the
// same owner cannot race-duplicate.
func (r *MongoPreferenceRepo) Resolve(ctx context.Context, ownerID string) (*models.NotificationPreference, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	defaults := models.DefaultPreference(ownerID)
	update := bson.M{"$setOnInsert": defaults}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var pref models.NotificationPreference
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"ownerId": ownerID}, update, opts).Decode(&pref)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preferences for %s: %w", ownerID, err)
	}
	return &pref, nil
}

func (r *MongoPreferenceRepo) Update(ctx context.Context, pref models.NotificationPreference) (*models.NotificationPreference, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"emailNotification":     pref.EmailNotification,
			"nearbyAlerts":          pref.NearbyAlerts,
			"pushNotifications":     pref.PushNotifications,
			"emergencyNotification": pref.EmergencyNotification,
			"updatedAt":             time.Now(),
		},
		"$setOnInsert": bson.M{
			"ownerId":   pref.OwnerID,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.NotificationPreference
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"ownerId": pref.OwnerID}, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences for %s: %w", pref.OwnerID, err)
	}
	return &updated, nil
}
