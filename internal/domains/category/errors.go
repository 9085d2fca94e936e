package category

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("category not found")
	ErrParentNotFound = errors.New("parent category not found")
	ErrDuplicateSlug  = errors.New("category slug already exists")
	ErrInUse          = errors.New("category is in use by child categories or products")
	ErrValidation     = errors.New("category validation failed")
)

// StatusCode maps each error kind to exactly one HTTP status. The
// in-use guard answers 400 so the admin UI shows it as a user error,
// not a conflict it can retry.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrParentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrInUse), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
