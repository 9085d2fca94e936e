package shared

import (
	"errors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrLimitOutOfRange = errors.New("limit must be between 1 and 100")
	ErrNegativeOffset  = errors.New("offset must not be negative")
)

// Pagination is embedded by every list filter. Zero values mean "not
// provided" and fall back to defaults; explicit out-of-range values are
// rejected.
type Pagination struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`

	limitSet bool
}

// SetLimit records an explicitly supplied limit so that Validate can
// tell "absent" apart from "zero".
func (p *Pagination) SetLimit(limit int) {
	p.Limit = limit
	p.limitSet = true
}

func (p *Pagination) Validate() error {
	if p.limitSet && (p.Limit < 1 || p.Limit > MaxLimit) {
		return ErrLimitOutOfRange
	}
	if p.Offset < 0 {
		return ErrNegativeOffset
	}
	return nil
}

// EffectiveLimit returns the limit to use in queries.
func (p *Pagination) EffectiveLimit() int {
	if !p.limitSet || p.Limit == 0 {
		return DefaultLimit
	}
	return p.Limit
}
