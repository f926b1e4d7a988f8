package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid operator password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
