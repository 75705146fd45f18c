package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"production keyword", "tournage pub extérieur", true},
		{"equipment context only", "besoin pour mon projet", true},
		{"case insensitive", "Location de CAMÉRA", true},
		{"too short", "ab", false},
		{"empty", "", false},
		{"blank", "   ", false},
		{"unrelated", "salut tout le monde", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidQuery(tc.query))
		})
	}
}

func TestSuggestionsAreValidQueries(t *testing.T) {
	suggestions := Suggestions()
	assert.Len(t, suggestions, 8)
	for _, suggestion := range suggestions {
		assert.True(t, ValidQuery(suggestion), suggestion)
	}
}
