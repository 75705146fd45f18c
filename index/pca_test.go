package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitProjection(t *testing.T) {
	// Points spread over a plane embedded in 3 dimensions.
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
		{2, 1, 0},
		{1, 2, 0},
	}

	t.Run("keeps at most the requested components", func(t *testing.T) {
		p, err := FitProjection(vectors, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Components())
		assert.Len(t, p.Apply(vectors[0]), 2)
	})

	t.Run("components capped by dimension and sample count", func(t *testing.T) {
		p, err := FitProjection(vectors, 100)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Components())

		two := [][]float32{{1, 0, 0}, {0, 1, 0}}
		p, err = FitProjection(two, 100)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Components())
	})

	t.Run("deterministic", func(t *testing.T) {
		p1, err := FitProjection(vectors, 2)
		require.NoError(t, err)
		p2, err := FitProjection(vectors, 2)
		require.NoError(t, err)

		a := p1.Apply(vectors[3])
		b := p2.Apply(vectors[3])
		require.Len(t, b, len(a))
		for i := range a {
			assert.InDelta(t, a[i], b[i], 1e-6)
		}
	})

	t.Run("projection preserves pairwise distances on a plane", func(t *testing.T) {
		// All variance lies in two dimensions, so a 2-component projection
		// is exact up to rotation.
		p, err := FitProjection(vectors, 2)
		require.NoError(t, err)

		orig := euclidean32(vectors[0], vectors[3])
		proj := euclidean32(p.Apply(vectors[0]), p.Apply(vectors[3]))
		assert.InDelta(t, orig, proj, 1e-5)
	})

	t.Run("identical inputs project identically", func(t *testing.T) {
		p, err := FitProjection(vectors, 2)
		require.NoError(t, err)
		a := p.Apply([]float32{1, 1, 0})
		b := p.Apply([]float32{1, 1, 0})
		assert.Equal(t, a, b)
	})
}

func TestFitProjectionErrors(t *testing.T) {
	t.Run("too few vectors", func(t *testing.T) {
		_, err := FitProjection([][]float32{{1, 2, 3}}, 2)
		assert.ErrorIs(t, err, ErrProjectionFit)
	})

	t.Run("zero dimension", func(t *testing.T) {
		_, err := FitProjection([][]float32{{}, {}}, 2)
		assert.ErrorIs(t, err, ErrProjectionFit)
	})

	t.Run("ragged input", func(t *testing.T) {
		_, err := FitProjection([][]float32{{1, 2, 3}, {1, 2}}, 2)
		assert.ErrorIs(t, err, ErrProjectionFit)
	})

	t.Run("non-positive component count", func(t *testing.T) {
		_, err := FitProjection([][]float32{{1, 0}, {0, 1}}, 0)
		assert.ErrorIs(t, err, ErrProjectionFit)
	})
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"scale invariant", []float32{1, 1}, []float32{5, 5}, 1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, cosineSimilarity(tc.a, tc.b), 1e-9)
		})
	}
}

func euclidean32(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
