package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-go/service-api/internal/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, limit int64) ([]models.Service, error)
	GetService(ctx context.Context, id string) (models.Service, error)
	AddService(ctx context.Context, service models.Service) (*models.InsertResult, error)
}

type ServiceHandler struct {
	service CatalogService
}

func NewServiceHandler(service CatalogService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

// ListServices handles GET /allServices?count=N. A missing or non-numeric
// count lists everything.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	count, err := strconv.ParseInt(c.Query("count"), 10, 64)
	if err != nil {
		count = 0
	}

	services, err := h.service.ListServices(c.Request.Context(), count)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /serviceDetails/:id and answers null for unknown ids.
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) AddService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil || service == nil {
		respondInvalidBody(c)
		return
	}

	res, err := h.service.AddService(c.Request.Context(), service)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
