package donation

import (
	"errors"
	"net/http"

	"animalovers-backend/internal/shared"
)

var (
	ErrValidation = errors.New("donation validation failed")
	ErrNotFound   = errors.New("donation not found")
	// ErrDuplicateTransaction marks a gateway transaction id that was
	// already recorded. The donation flow treats it as already
	// processed, not as a failure.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, shared.ErrLimitOutOfRange),
		errors.Is(err, shared.ErrNegativeOffset):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateTransaction):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
