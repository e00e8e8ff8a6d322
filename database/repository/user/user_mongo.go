package userRepo

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

// ErrNotFound is returned when a user id matches nothing.
var ErrNotFound = mongo.ErrNoDocuments

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.AccountType == "" {
		user.AccountType = models.AccountUser
	}
	if len(user.Location.Coordinates) != 2 {
		user.Location = models.NewGeoPoint(0, 0)
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	updateFields := bson.M{"updatedAt": time.Now()}
	if user.Fullname != "" {
		updateFields["fullname"] = user.Fullname
	}
	if user.Email != "" {
		updateFields["email"] = user.Email
	}
	if user.PhoneNumber != "" {
		updateFields["phoneNumber"] = user.PhoneNumber
	}
	if user.FCMToken != "" {
		updateFields["fcmToken"] = user.FCMToken
	}
	if len(updateFields) == 1 {
		return fmt.Errorf("no updatable fields provided")
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{"$set": updateFields})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetVerifiedLocation overwrites the user's location with the verified
// coordinates and marks the account identity-verified.
func (r *MongoUserRepo) SetVerifiedLocation(ctx context.Context, id string, lng, lat float64) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"location":        models.NewGeoPoint(lng, lat),
		"isAuthenticated": true,
		"updatedAt":       time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set verified location for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isBlocked": blocked, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update blocked flag for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) Admins(ctx context.Context) ([]models.UserRef, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"id": 1, "fullname": 1, "email": 1, "fcmToken": 1,
	})
	cursor, err := r.coll.Find(ctx, bson.M{"accountType": models.AccountAdmin}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admins: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []models.UserRef
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("failed to decode admins: %w", err)
	}
	return admins, nil
}
