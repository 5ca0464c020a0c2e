package services

import (
	"fmt"
	"strings"

	"travel-go/service-api/internal/models"
	"travel-go/service-api/internal/utils"
)

type TokenSigner interface {
	GenerateToken(payload map[string]interface{}) (string, error)
}

type TokenService struct {
	signer TokenSigner
}

func NewTokenService(signer TokenSigner) *TokenService {
	return &TokenService{signer: signer}
}

// IssueToken signs the whole identity payload. The payload must carry a
// valid email since that is the claim the review listing checks.
func (s *TokenService) IssueToken(payload map[string]interface{}) (string, error) {
	email, _ := payload["email"].(string)
	req := models.TokenRequest{Email: email}
	if err := utils.GetValidator().Struct(req); err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrInvalidPayload, strings.Join(utils.ParseErrors(err), "; "))
	}

	return s.signer.GenerateToken(payload)
}
