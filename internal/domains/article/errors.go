package article

import (
	"errors"
	"net/http"

	"animalovers-backend/internal/shared"
)

var (
	ErrNotFound         = errors.New("article not found")
	ErrTaxonomyNotFound = errors.New("article category or tag not found")
	ErrDuplicateSlug    = errors.New("article slug already exists")
	ErrValidation       = errors.New("article validation failed")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTaxonomyNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrValidation),
		errors.Is(err, shared.ErrLimitOutOfRange),
		errors.Is(err, shared.ErrNegativeOffset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
