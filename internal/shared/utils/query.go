package utils

import (
	"fmt"
	"strconv"
	"strings"

	"animalovers-backend/internal/shared"
)

// ParsePagination turns raw limit/offset query values into a validated
// Pagination. Empty strings mean "not provided".
func ParsePagination(limitStr, offsetStr string) (shared.Pagination, error) {
	p := shared.Pagination{}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return p, fmt.Errorf("invalid limit: %q", limitStr)
		}
		p.SetLimit(limit)
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return p, fmt.Errorf("invalid offset: %q", offsetStr)
		}
		p.Offset = offset
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ParseBoolParam parses an optional boolean query value. Empty means
// "not provided" and yields nil.
func ParseBoolParam(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return nil, fmt.Errorf("invalid boolean: %q", value)
	}
	return &b, nil
}

// OptionalString yields nil for empty query values.
func OptionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
