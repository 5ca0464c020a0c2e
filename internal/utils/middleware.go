package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

const claimsKey = "tokenClaims"

// Rejection bodies of the auth gate. 401 means "log in", 403 means the
// credential was presented but is not good enough.
const (
	MsgUnauthorized     = "unauthorized access"
	MsgForbidden        = "forbidden access"
	MsgIdentityMismatch = "forbidden access: identity mismatch"
)

// AuthMiddleware moves a request from unverified to verified. A missing or
// non-bearer Authorization header is rejected with 401, a token that fails
// signature or expiry checks with 403.
func AuthMiddleware(jwtUtil *JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgUnauthorized})
			return
		}

		v := jwtUtil.Verify(tokenString)
		if !v.Valid() {
			zerolog.Ctx(c.Request.Context()).Debug().
				Stringer("reason", v.Status).
				Err(v.Err).
				Msg("bearer token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MsgForbidden})
			return
		}

		c.Set(claimsKey, v.Claims)
		c.Next()
	}
}

// IdentityMiddleware moves a verified request to authorized when the token's
// email claim equals the named query parameter. It must run after
// AuthMiddleware.
func IdentityMiddleware(queryParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgUnauthorized})
			return
		}

		email, _ := claims["email"].(string)
		if email == "" || email != c.Query(queryParam) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MsgIdentityMismatch})
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (jwt.MapClaims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(jwt.MapClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
