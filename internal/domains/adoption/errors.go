package adoption

import (
	"errors"
	"net/http"

	"animalovers-backend/internal/shared"
)

var (
	ErrNotFound   = errors.New("animal not found")
	ErrValidation = errors.New("animal validation failed")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, shared.ErrLimitOutOfRange),
		errors.Is(err, shared.ErrNegativeOffset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
