package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// embeddingDim matches the dimensionality of the default embedding model.
const embeddingDim = 384

// MockEmbedder is a test double for ai.Embedder. Without injected
// functions it produces deterministic vectors, so index and engine tests
// get stable cosine similarities without a model server.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)
}

// NewMockEmbedder creates a mock embedder with deterministic defaults.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return DeterministicVector(text, embeddingDim), nil
}

func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = DeterministicVector(text, embeddingDim)
	}
	return vectors, nil
}

// DeterministicVector derives a unit vector from text. The same text
// always yields the same vector; components are centered on zero so
// cosine similarities between unrelated texts stay small.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	state := h.Sum32()

	vector := make([]float32, dim)
	var norm float64
	for i := range vector {
		state = state*1664525 + 1013904223 // numerical recipes LCG
		v := float32(state%1000)/1000.0 - 0.5
		vector[i] = v
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1.0 / math.Sqrt(norm))
		for i := range vector {
			vector[i] *= scale
		}
	}
	return vector
}
