package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Lemmatizer reduces the words of a query to their dictionary form.
// It is a linguistic aid for text normalization: lemmas are appended to the
// normalized query so that inflected forms ("tournages") still match catalog
// vocabulary ("tournage"). Implementations must be thread-safe.
//
// The lemmatizer is optional. Callers must tolerate its absence and treat
// lemmatization failures as skippable.
type Lemmatizer interface {
	// Lemmatize returns the base forms of the words in text, lowercased.
	// An empty slice is a valid result.
	Lemmatize(ctx context.Context, text string) ([]string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Lemmatizer instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Lemmatizer returns the lemmatization service, or nil when the provider
	// was configured without one. Callers must handle the nil case.
	Lemmatizer() Lemmatizer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
