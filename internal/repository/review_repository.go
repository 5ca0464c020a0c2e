package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-go/service-api/internal/models"
)

const reviewCollection = "reviewCollection"

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(reviewCollection)}
}

func (r *ReviewRepository) Create(ctx context.Context, review models.Review) (*models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	return models.NewInsertResult(res), nil
}

func (r *ReviewRepository) GetByServiceID(ctx context.Context, serviceID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{models.FieldServiceID: serviceID})
}

// GetByServiceOrEmail matches reviews of the service as well as every review
// written by email.
func (r *ReviewRepository) GetByServiceOrEmail(ctx context.Context, serviceID, email string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{models.FieldServiceID: serviceID},
		bson.M{models.FieldEmail: email},
	}})
}

// UpdateText replaces only the review text.
func (r *ReviewRepository) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{models.FieldReview: text}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return models.NewUpdateResult(res), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return models.NewDeleteResult(res), nil
}

// find returns matches newest reviewTime first.
func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: models.FieldReviewTime, Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
