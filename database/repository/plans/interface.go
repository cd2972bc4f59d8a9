package plansRepo

import (
	"context"

	"tripmesh/database"
	"tripmesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PlanRepository interface {
	Save(ctx context.Context, rec models.PlanRecord) error
	GetByID(ctx context.Context, id string) (*models.PlanRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.PlanRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a PlanRepository backed by MongoDB, or nil when
// no database connection was configured.
func NewMongoPlanRepo() PlanRepository {
	if database.MongoClient == nil {
		return nil
	}
	db := database.MongoClient.Database("tripmesh")
	return &mongoPlanRepo{
		coll: db.Collection("plans"),
	}
}
