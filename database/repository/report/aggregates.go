package reportRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LocalCounts annotates nearby reports with spherical distance once, then
// fans the result into three counts with $facet: all-time total, completed
// subset, and the current-calendar-month subset.
func (r *MongoReportRepo) LocalCounts(ctx context.Context, lng, lat, radiusMeters float64, monthStart time.Time) (LocalSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lng, lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: radiusMeters},
		}}},
		bson.D{{Key: "$facet", Value: bson.M{
			"total": bson.A{bson.M{"$count": "n"}},
			"completed": bson.A{
				bson.M{"$match": bson.M{"status": "completed"}},
				bson.M{"$count": "n"},
			},
			"thisMonth": bson.A{
				bson.M{"$match": bson.M{"createdAt": bson.M{"$gte": monthStart}}},
				bson.M{"$count": "n"},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return LocalSummary{}, fmt.Errorf("local summary aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	type facetCount struct {
		N int64 `bson:"n"`
	}
	var results []struct {
		Total     []facetCount `bson:"total"`
		Completed []facetCount `bson:"completed"`
		ThisMonth []facetCount `bson:"thisMonth"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return LocalSummary{}, fmt.Errorf("failed to decode local summary: %w", err)
	}

	var summary LocalSummary
	if len(results) > 0 {
		if len(results[0].Total) > 0 {
			summary.Total = results[0].Total[0].N
		}
		if len(results[0].Completed) > 0 {
			summary.Completed = results[0].Completed[0].N
		}
		if len(results[0].ThisMonth) > 0 {
			summary.ThisMonth = results[0].ThisMonth[0].N
		}
	}
	return summary, nil
}

// MonthlyCountsNear groups reports within the radius created since the
// given instant by calendar month.
func (r *MongoReportRepo) MonthlyCountsNear(ctx context.Context, lng, lat, radiusMeters float64, since time.Time) (map[MonthKey]int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lng, lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: radiusMeters},
			{Key: "query", Value: bson.M{"createdAt": bson.M{"$gte": since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("nearby monthly aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode nearby monthly counts: %w", err)
	}

	counts := make(map[MonthKey]int64, len(rows))
	for _, row := range rows {
		counts[MonthKey{Year: row.ID.Year, Month: row.ID.Month}] = row.Count
	}
	return counts, nil
}

// MonthlyGlobalCounts groups all reports created since the given instant by
// calendar month, with the resolved subset counted per bucket.
func (r *MongoReportRepo) MonthlyGlobalCounts(ctx context.Context, since time.Time) (map[MonthKey]MonthlyCount, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"reports": bson.M{"$sum": 1},
			"resolved": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", "completed"}}, 1, 0},
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("global monthly aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Reports  int64 `bson:"reports"`
		Resolved int64 `bson:"resolved"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode global monthly counts: %w", err)
	}

	counts := make(map[MonthKey]MonthlyCount, len(rows))
	for _, row := range rows {
		counts[MonthKey{Year: row.ID.Year, Month: row.ID.Month}] = MonthlyCount{
			Reports:  row.Reports,
			Resolved: row.Resolved,
		}
	}
	return counts, nil
}

// DailyCountsSince groups reports created at or after the given local
// midnight by calendar day.
func (r *MongoReportRepo) DailyCountsSince(ctx context.Context, since time.Time) (map[string]int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("daily activity aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode daily counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}
