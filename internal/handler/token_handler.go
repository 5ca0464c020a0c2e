package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-go/service-api/internal/models"
)

type TokenService interface {
	IssueToken(payload map[string]interface{}) (string, error)
}

type TokenHandler struct {
	service TokenService
}

func NewTokenHandler(service TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

// IssueToken handles POST /jwt.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		respondInvalidBody(c)
		return
	}

	token, err := h.service.IssueToken(payload)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
