package settings

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound   = errors.New("settings not initialized")
	ErrValidation = errors.New("settings validation failed")
	// ErrVersionConflict means another writer got there first; the
	// client must re-read and retry with the current version.
	ErrVersionConflict = errors.New("settings version conflict")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
