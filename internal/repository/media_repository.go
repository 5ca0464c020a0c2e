package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-go/service-api/internal/models"
)

type MediaRepository struct {
	collection *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{collection: db.Collection("serviceMediaCollection")}
}

func (r *MediaRepository) Save(ctx context.Context, media *models.ServiceMedia) error {
	if media.UploadedAt.IsZero() {
		media.UploadedAt = time.Now().UTC()
	}
	res, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		media.ID = id
	}
	return nil
}

func (r *MediaRepository) GetByServiceID(ctx context.Context, serviceID string) ([]models.ServiceMedia, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"serviceId": serviceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.ServiceMedia{}
	err = cursor.All(ctx, &results)
	return results, err
}
