package userRepo

import (
	"context"
	"fmt"
	"time"

	"report2clean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NearbyRecipients selects the fan-out candidate set: users within
// radiusMeters of the origin, excluding the submitter, blocked accounts and
// admins. A radius query around a real report cannot match null island, but
// the [0,0] sentinel is filtered out explicitly anyway so an unset location
// never leaks into a recipient set.
func (r *MongoUserRepo) NearbyRecipients(ctx context.Context, originLng, originLat, radiusMeters float64, excludeUserID string) ([]models.UserRef, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{originLng, originLat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: radiusMeters},
			{Key: "query", Value: bson.M{
				"id":                   bson.M{"$ne": excludeUserID},
				"isBlocked":            false,
				"accountType":          models.AccountUser,
				"location.coordinates": bson.M{"$ne": bson.A{0, 0}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"id": 1, "fullname": 1, "email": 1, "fcmToken": 1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("nearby recipient query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var recipients []models.UserRef
	if err := cursor.All(ctx, &recipients); err != nil {
		return nil, fmt.Errorf("failed to decode nearby recipients: %w", err)
	}
	return recipients, nil
}
