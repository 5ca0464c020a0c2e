package models

import "errors"

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrCacheMiss      = errors.New("cache miss")
)
