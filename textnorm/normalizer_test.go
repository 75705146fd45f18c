package textnorm

import (
	"context"
	"errors"
	"testing"

	"github.com/cinerent/gearmatch/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := New()
	ctx := context.Background()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Tournage PUB  ", "tournage pub"},
		{"strips punctuation", "clip, musical!", "clip clip"},
		{"keeps hyphens and accents", "court-métrage élevé", "court-court-métrage-court-métrage high"},
		{"folds budget synonyms", "budget élevé", "budget high"},
		{"pas cher folds to low, not high", "un truc pas cher", "un truc low"},
		{"folds location synonyms", "tournage dehors", "tournage extérieur"},
		{"folds english synonyms", "indoor interview", "intérieur interview"},
		{"multi-word synonym", "événement en plein air", "événement en extérieur"},
		{"no substring folding", "international", "international"},
		{"collapses whitespace", "pub   \t studio", "pub studio"},
		{"empty input", "   ", ""},
		{"symbols only", "@#$%", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(ctx, tc.input))
		})
	}
}

func TestNormalizeIdempotentVocabulary(t *testing.T) {
	// Canonical vocabulary must survive a second pass unchanged.
	n := New()
	ctx := context.Background()

	once := n.Normalize(ctx, "interview studio budget high")
	twice := n.Normalize(ctx, once)
	assert.Equal(t, once, twice)
}

func TestNormalizeWithLemmatizer(t *testing.T) {
	ctx := context.Background()

	t.Run("lemmas are appended", func(t *testing.T) {
		lemmatizer := mock.NewMockLemmatizer()
		lemmatizer.LemmatizeFunc = func(ctx context.Context, text string) ([]string, error) {
			return []string{"tournage", "publicitaire"}, nil
		}
		n := New(WithLemmatizer(lemmatizer))

		got := n.Normalize(ctx, "tournages publicitaires")
		assert.Equal(t, "tournages publicitaires tournage publicitaire", got)
		assert.Equal(t, 1, lemmatizer.CallCount())
	})

	t.Run("failure is skipped silently", func(t *testing.T) {
		lemmatizer := mock.NewMockLemmatizer()
		lemmatizer.LemmatizeFunc = func(ctx context.Context, text string) ([]string, error) {
			return nil, errors.New("model offline")
		}
		n := New(WithLemmatizer(lemmatizer))

		got := n.Normalize(ctx, "tournage pub")
		assert.Equal(t, "tournage pub", got)
	})

	t.Run("empty lemma list leaves text alone", func(t *testing.T) {
		n := New(WithLemmatizer(mock.NewMockLemmatizer()))
		got := n.Normalize(ctx, "tournage pub")
		assert.Equal(t, "tournage pub", got)
	})

	t.Run("lemmatizer not consulted for empty result", func(t *testing.T) {
		lemmatizer := mock.NewMockLemmatizer()
		n := New(WithLemmatizer(lemmatizer))
		assert.Empty(t, n.Normalize(ctx, "!!!"))
		assert.Zero(t, lemmatizer.CallCount())
	})
}

func TestNormalizeDecomposedAccents(t *testing.T) {
	// "élevé" written with combining accents must still fold to "high".
	n := New()
	decomposed := "budget e\u0301leve\u0301"
	got := n.Normalize(context.Background(), decomposed)
	assert.Equal(t, "budget high", got)
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		term      string
		canonical string
		known     bool
	}{
		{"dehors", "extérieur", true},
		{"outdoor", "extérieur", true},
		{"studio", "studio", true},
		{"élevé", "high", true},
		{"reportage", "documentaire", true},
		{"caméscope", "", false},
	}
	for _, tc := range cases {
		got, ok := Canonical(tc.term)
		require.Equal(t, tc.known, ok, "term %q", tc.term)
		if ok {
			assert.Equal(t, tc.canonical, got, "term %q", tc.term)
		}
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("pub high extérieur pub")
	assert.Len(t, set, 3)
	_, ok := set["pub"]
	assert.True(t, ok)

	assert.Empty(t, TokenSet(""))
}
