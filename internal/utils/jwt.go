package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenStatus is the outcome of verifying a bearer token.
type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenMissing
	TokenMalformed
	TokenExpired
	TokenBadSignature
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenMissing:
		return "missing"
	case TokenMalformed:
		return "malformed"
	case TokenExpired:
		return "expired"
	case TokenBadSignature:
		return "signature"
	default:
		return fmt.Sprintf("TokenStatus(%d)", int(s))
	}
}

// Verification is either Valid with the token's claims, or Invalid with a
// reason and the underlying parse error.
type Verification struct {
	Status TokenStatus
	Claims jwt.MapClaims
	Err    error
}

func (v Verification) Valid() bool {
	return v.Status == TokenValid
}

// Email returns the email claim, or "" when absent or not a string.
func (v Verification) Email() string {
	email, _ := v.Claims["email"].(string)
	return email
}

type JWTUtil struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTUtil(secret string, ttl time.Duration) *JWTUtil {
	return &JWTUtil{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken signs payload as HS256 claims. iat and exp are always set by
// the util and override anything of the same name in payload.
func (j *JWTUtil) GenerateToken(payload map[string]interface{}) (string, error) {
	issuedAt := j.now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = issuedAt.Add(j.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks an HS256 signature and expiry. Tokens without exp are malformed.
func (j *JWTUtil) Verify(tokenString string) Verification {
	if tokenString == "" {
		return Verification{Status: TokenMissing, Err: errors.New("token is empty")}
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Verification{Status: TokenMalformed, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Verification{Status: TokenBadSignature, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{Status: TokenExpired, Err: err}
	default:
		if err == nil {
			err = errors.New("token is invalid")
		}
		return Verification{Status: TokenMalformed, Err: err}
	}

	if _, ok := claims["exp"]; !ok {
		return Verification{Status: TokenMalformed, Err: errors.New("token has no exp claim")}
	}

	return Verification{Status: TokenValid, Claims: claims}
}
