package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"diacritics stripped", "Café du Chat!", "cafe-du-chat"},
		{"plain ascii", "Adopt a Dog", "adopt-a-dog"},
		{"repeated separators collapse", "Big  --  Sale", "big-sale"},
		{"leading and trailing junk trimmed", "  ***Chats*** ", "chats"},
		{"cedilla and accents", "Reçu d'été", "recu-d-ete"},
		{"numbers survive", "Top 10 croquettes 2024", "top-10-croquettes-2024"},
		{"ampersand becomes separator", "Cats&Dogs", "cats-dogs"},
		{"underscore becomes separator", "food_bowl", "food-bowl"},
		{"dots become separators", "a.b.c", "a-b-c"},
		{"empty input", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	first := GenerateSlug("Café du Chat!")
	second := GenerateSlug("Café du Chat!")
	assert.Equal(t, first, second)
}

func TestGenerateSlugShape(t *testing.T) {
	slug := GenerateSlug("Éléphant  à   Paris!!!")
	assert.False(t, strings.Contains(slug, " "))
	assert.False(t, strings.Contains(slug, "--"))
	for _, r := range slug {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-',
			"unexpected rune %q in slug %q", r, slug)
	}
}
