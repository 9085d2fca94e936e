package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationValidate(t *testing.T) {
	tests := []struct {
		name    string
		limit   *int
		offset  int
		wantErr error
	}{
		{"defaults", nil, 0, nil},
		{"limit lower bound", intPtr(1), 0, nil},
		{"limit upper bound", intPtr(100), 0, nil},
		{"limit zero rejected", intPtr(0), 0, ErrLimitOutOfRange},
		{"limit above max rejected", intPtr(101), 0, ErrLimitOutOfRange},
		{"negative limit rejected", intPtr(-1), 0, ErrLimitOutOfRange},
		{"negative offset rejected", nil, -1, ErrNegativeOffset},
		{"positive offset", nil, 40, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Offset: tt.offset}
			if tt.limit != nil {
				p.SetLimit(*tt.limit)
			}
			assert.ErrorIs(t, p.Validate(), tt.wantErr)
		})
	}
}

func TestPaginationEffectiveLimit(t *testing.T) {
	p := Pagination{}
	assert.Equal(t, DefaultLimit, p.EffectiveLimit())

	p.SetLimit(50)
	assert.Equal(t, 50, p.EffectiveLimit())
}

func intPtr(n int) *int { return &n }
