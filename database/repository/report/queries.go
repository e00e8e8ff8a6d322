package reportRepo

import (
	"context"
	"fmt"
	"time"

	"report2clean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Nearby runs a point-radius browse query. $geoNear must be the first
// pipeline stage, so the optional status/date filters ride in its query
// document rather than a later $match.
func (r *MongoReportRepo) Nearby(ctx context.Context, q NearbyQuery) ([]models.Report, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	created := bson.M{}
	if !q.From.IsZero() {
		created["$gte"] = q.From
	}
	if !q.To.IsZero() {
		created["$lte"] = q.To
	}
	if len(created) > 0 {
		filter["createdAt"] = created
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{q.Lng, q.Lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: q.RadiusMeters},
			{Key: "query", Value: filter},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "distance", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("nearby report query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode nearby reports: %w", err)
	}
	return reports, nil
}
