package user

import (
	"errors"
	"net/http"

	"animalovers-backend/internal/shared"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers every login failure: unknown email,
	// wrong password, inactive account or a non-admin role. Callers must
	// not learn which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrLimitOutOfRange),
		errors.Is(err, shared.ErrNegativeOffset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
