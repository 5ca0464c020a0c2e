package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-go/service-api/internal/models"
)

type MediaService interface {
	UploadMedia(ctx context.Context, serviceID string, file io.Reader, filename, contentType string, size int64) (*models.ServiceMedia, error)
	GetMediaByService(ctx context.Context, serviceID string) ([]models.ServiceMedia, error)
}

type MediaHandler struct {
	service MediaService
}

func NewMediaHandler(service MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file missing"})
		return
	}
	defer file.Close()

	media, err := h.service.UploadMedia(c.Request.Context(), c.Param("id"), file,
		header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) GetMediaByService(c *gin.Context) {
	media, err := h.service.GetMediaByService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}
