package plansRepo

import (
	"context"
	"errors"
	"time"

	"tripmesh/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a generated plan record.
func (r *mongoPlanRepo) Save(ctx context.Context, rec models.PlanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, rec)
	return err
}

// GetByID returns a plan record by its ID.
func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.PlanRecord, error) {
	var rec models.PlanRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecent returns the newest plan records, newest first.
func (r *mongoPlanRepo) ListRecent(ctx context.Context, limit int) ([]models.PlanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PlanRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes a plan record by ID.
func (r *mongoPlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("plan not found")
	}
	return nil
}
