package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-go/service-api/internal/models"
)

const serviceCollection = "serviceCollection"

type ServiceRepository struct {
	collection *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection(serviceCollection)}
}

// GetAll returns services in store order. limit <= 0 means no limit.
func (r *ServiceRepository) GetAll(ctx context.Context, limit int64) ([]models.Service, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns nil without error when no service has the id.
func (r *ServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error) {
	var service models.Service
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service models.Service) (*models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, service)
	if err != nil {
		return nil, err
	}
	return models.NewInsertResult(res), nil
}
