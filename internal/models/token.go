package models

// TokenRequest is the identity submitted to POST /jwt. Email is the claim the
// review listing checks; any other fields are signed into the token as-is.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
