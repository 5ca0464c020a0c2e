package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-go/service-api/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (*models.InsertResult, error)
	GetByServiceID(ctx context.Context, serviceID string) ([]models.Review, error)
	GetByServiceOrEmail(ctx context.Context, serviceID, email string) ([]models.Review, error)
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(r ReviewRepository) *ReviewService {
	return &ReviewService{repo: r}
}

func (s *ReviewService) PostReview(ctx context.Context, review models.Review) (*models.InsertResult, error) {
	res, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("post review: %w", err)
	}
	return res, nil
}

func (s *ReviewService) ReviewsByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	reviews, err := s.repo.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of service %q: %w", serviceID, err)
	}
	return reviews, nil
}

// ReviewsByServiceOrEmail is only reached by callers whose token carries email.
func (s *ReviewService) ReviewsByServiceOrEmail(ctx context.Context, serviceID, email string) ([]models.Review, error) {
	reviews, err := s.repo.GetByServiceOrEmail(ctx, serviceID, email)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id, text string) (*models.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	res, err := s.repo.UpdateText(ctx, objID, text)
	if err != nil {
		return nil, fmt.Errorf("update review %s: %w", id, err)
	}
	return res, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string) (*models.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	res, err := s.repo.Delete(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("delete review %s: %w", id, err)
	}
	return res, nil
}
