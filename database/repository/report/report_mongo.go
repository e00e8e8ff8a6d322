package reportRepo

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

// ErrNotFound is returned when a report id matches nothing.
var ErrNotFound = mongo.ErrNoDocuments

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reports")
	repo := &MongoReportRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create report indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoReportRepo) Create(ctx context.Context, report *models.Report) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now
	if report.Status == "" {
		report.Status = models.StatusPending
	}

	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *MongoReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var report models.Report
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}
	return &report, nil
}

func (r *MongoReportRepo) GetByReporter(ctx context.Context, userID string) ([]models.Report, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"reportedBy": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

func (r *MongoReportRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report models.Report
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of report %s: %w", id, err)
	}
	return &report, nil
}

func (r *MongoReportRepo) Accept(ctx context.Context, id, adminID string) (*models.Report, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"acceptedBy": adminID,
		"status":     models.StatusOnProgress,
		"updatedAt":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report models.Report
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to accept report %s: %w", id, err)
	}
	return &report, nil
}

func (r *MongoReportRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReportRepo) CountByReporter(ctx context.Context, userID, status string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"reportedBy": userID}
	if status != "" {
		filter["status"] = status
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *MongoReportRepo) CountPendingSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"status":    models.StatusPending,
		"createdAt": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending reports: %w", err)
	}
	return count, nil
}

func (r *MongoReportRepo) ListWithSubmitters(ctx context.Context, page, perPage int64) (int64, []models.ReportWithSubmitter, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count reports: %w", err)
	}

	if page < 1 {
		page = 1
	}
	skip := (page - 1) * perPage

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: perPage}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "reportedBy"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "submitter"},
		}}},
		bson.D{{Key: "$unwind", Value: "$submitter"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, nil, fmt.Errorf("report listing aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.ReportWithSubmitter
	if err := cursor.All(ctx, &reports); err != nil {
		return 0, nil, fmt.Errorf("failed to decode report listing: %w", err)
	}
	return total, reports, nil
}
