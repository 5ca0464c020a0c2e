package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-go/service-api/internal/models"
)

type ReviewService interface {
	PostReview(ctx context.Context, review models.Review) (*models.InsertResult, error)
	ReviewsByService(ctx context.Context, serviceID string) ([]models.Review, error)
	ReviewsByServiceOrEmail(ctx context.Context, serviceID, email string) ([]models.Review, error)
	UpdateReview(ctx context.Context, id, text string) (*models.UpdateResult, error)
	DeleteReview(ctx context.Context, id string) (*models.DeleteResult, error)
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) PostReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil || review == nil {
		respondInvalidBody(c)
		return
	}

	res, err := h.service.PostReview(c.Request.Context(), review)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetReviewsByService handles GET /serviceReview?serviceId=.
func (h *ReviewHandler) GetReviewsByService(c *gin.Context) {
	reviews, err := h.service.ReviewsByService(c.Request.Context(), c.Query("serviceId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetAllReviews handles GET /allReview?serviceId=&email=. It sits behind the
// auth gate, so email is the caller's own.
func (h *ReviewHandler) GetAllReviews(c *gin.Context) {
	reviews, err := h.service.ReviewsByServiceOrEmail(c.Request.Context(), c.Query("serviceId"), c.Query("email"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req models.ReviewUpdate
	if err := c.ShouldBindJSON(&req); err != nil || req.Review == nil {
		respondInvalidBody(c)
		return
	}

	res, err := h.service.UpdateReview(c.Request.Context(), c.Param("id"), *req.Review)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	res, err := h.service.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
