package handler

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-go/service-api/internal/models"
)

type fakeCatalog struct {
	services  []models.Service
	byID      map[string]models.Service
	lastLimit int64
	added     models.Service
	err       error
}

func (f *fakeCatalog) ListServices(_ context.Context, limit int64) ([]models.Service, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeCatalog) GetService(_ context.Context, id string) (models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, models.ErrInvalidID
	}
	return f.byID[id], nil
}

func (f *fakeCatalog) AddService(_ context.Context, service models.Service) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = service
	return &models.InsertResult{Acknowledged: true, InsertedID: "66b0c0ffee0000000000abcd"}, nil
}

type fakeReviews struct {
	posted            models.Review
	reviews           []models.Review
	serviceID, email  string
	updateID, newText string
	deleteID          string
	err               error
}

func (f *fakeReviews) PostReview(_ context.Context, review models.Review) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.posted = review
	return &models.InsertResult{Acknowledged: true, InsertedID: "r1"}, nil
}

func (f *fakeReviews) ReviewsByService(_ context.Context, serviceID string) ([]models.Review, error) {
	f.serviceID = serviceID
	return f.reviews, f.err
}

func (f *fakeReviews) ReviewsByServiceOrEmail(_ context.Context, serviceID, email string) ([]models.Review, error) {
	f.serviceID, f.email = serviceID, email
	return f.reviews, f.err
}

func (f *fakeReviews) UpdateReview(_ context.Context, id, text string) (*models.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, models.ErrInvalidID
	}
	f.updateID, f.newText = id, text
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeReviews) DeleteReview(_ context.Context, id string) (*models.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, models.ErrInvalidID
	}
	f.deleteID = id
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeMedia struct {
	filename string
	body     []byte
}

func (f *fakeMedia) UploadMedia(_ context.Context, serviceID string, file io.Reader, filename, contentType string, size int64) (*models.ServiceMedia, error) {
	if _, err := primitive.ObjectIDFromHex(serviceID); err != nil {
		return nil, models.ErrInvalidID
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.filename, f.body = filename, body
	return &models.ServiceMedia{ServiceID: serviceID, URL: "http://cdn/" + filename, ContentType: contentType, Size: size}, nil
}

func (f *fakeMedia) GetMediaByService(_ context.Context, serviceID string) ([]models.ServiceMedia, error) {
	return []models.ServiceMedia{{ServiceID: serviceID}}, nil
}
