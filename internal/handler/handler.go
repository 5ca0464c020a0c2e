package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travel-go/service-api/internal/models"
)

func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrInvalidID.Error()})
	case errors.Is(err, models.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func respondInvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrInvalidPayload.Error()})
}
