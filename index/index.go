// Copyright 2026 Cinerent Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package index builds the per-process catalog index: entries, cached lexical
// token sets, precomputed embeddings and an optional PCA projection. An index
// is immutable after Build returns and safe to share across goroutines
// without locking.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cinerent/gearmatch/ai"
	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/textnorm"
	"github.com/panjf2000/ants/v2"
)

const (
	defaultPoolSize   = 4
	defaultBatchSize  = 32
	defaultComponents = 100
)

// CatalogIndex holds everything the scoring pipeline needs per entry.
type CatalogIndex struct {
	entries       []*core.CatalogEntry
	tokenSets     []map[string]struct{}
	vectors       [][]float32 // projected when projection != nil, raw otherwise
	projection    *Projection
	dimensions    int // raw embedding dimension
	maxComplexity int
	knownTypes    map[string]struct{}
	logger        *slog.Logger
}

type buildOptions struct {
	poolSize   int
	batchSize  int
	projection bool
	components int
	logger     *slog.Logger
}

// BuildOption is a functional option for Build.
type BuildOption func(*buildOptions)

// WithPoolSize sets the number of concurrent embedding workers.
func WithPoolSize(size int) BuildOption {
	return func(o *buildOptions) {
		if size > 0 {
			o.poolSize = size
		}
	}
}

// WithBatchSize sets how many entry texts are embedded per request.
func WithBatchSize(size int) BuildOption {
	return func(o *buildOptions) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithoutProjection disables the PCA projection; similarities are computed
// in the full embedding space.
func WithoutProjection() BuildOption {
	return func(o *buildOptions) {
		o.projection = false
	}
}

// WithProjectionComponents caps the number of PCA components.
func WithProjectionComponents(components int) BuildOption {
	return func(o *buildOptions) {
		if components > 0 {
			o.components = components
		}
	}
}

// WithLogger sets the logger used during the build.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger.With("component", "catalog-index")
		}
	}
}

// Build constructs the index: it validates the entries, normalizes and
// embeds their text representations (batched, over a worker pool), caches
// the lexical token sets, and fits the PCA projection.
//
// An embedder failure aborts the build; a projection fit failure does not,
// the index then scores in the full embedding space.
func Build(ctx context.Context, entries []*core.CatalogEntry, embedder ai.Embedder, normalizer *textnorm.Normalizer, opts ...BuildOption) (*CatalogIndex, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	options := &buildOptions{
		poolSize:   defaultPoolSize,
		batchSize:  defaultBatchSize,
		projection: true,
		components: defaultComponents,
		logger:     slog.Default().With("component", "catalog-index"),
	}
	for _, opt := range opts {
		opt(options)
	}

	texts := make([]string, len(entries))
	tokenSets := make([]map[string]struct{}, len(entries))
	maxComplexity := 0
	knownTypes := make(map[string]struct{})

	for i, entry := range entries {
		if err := core.ValidateCatalogEntry(entry); err != nil {
			return nil, err
		}
		texts[i] = normalizer.Normalize(ctx, embeddingText(entry))
		tokenSets[i] = textnorm.TokenSet(normalizer.Normalize(ctx, lexicalText(entry)))
		if entry.Complexity > maxComplexity {
			maxComplexity = entry.Complexity
		}
		knownTypes[entry.ProjectType] = struct{}{}
	}

	vectors, err := embedAll(ctx, texts, embedder, options)
	if err != nil {
		return nil, err
	}

	idx := &CatalogIndex{
		entries:       entries,
		tokenSets:     tokenSets,
		vectors:       vectors,
		dimensions:    len(vectors[0]),
		maxComplexity: maxComplexity,
		knownTypes:    knownTypes,
		logger:        options.logger,
	}

	if options.projection {
		projection, err := FitProjection(vectors, options.components)
		if err != nil {
			options.logger.Warn("projection unavailable, scoring in full embedding space", "err", err)
		} else {
			projected := make([][]float32, len(vectors))
			for i, vector := range vectors {
				projected[i] = projection.Apply(vector)
			}
			idx.projection = projection
			idx.vectors = projected
		}
	}

	options.logger.Info("catalog index built",
		"entries", len(entries),
		"dimensions", idx.dimensions,
		"projected", idx.projection != nil,
		"max_complexity", maxComplexity)

	return idx, nil
}

// embedAll embeds texts in batches over an ants worker pool, preserving
// input order.
func embedAll(ctx context.Context, texts []string, embedder ai.Embedder, options *buildOptions) ([][]float32, error) {
	pool, err := ants.NewPool(options.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	vectors := make([][]float32, len(texts))
	batches := (len(texts) + options.batchSize - 1) / options.batchSize
	errs := make([]error, batches)

	var wg sync.WaitGroup
	for b := 0; b < batches; b++ {
		start := b * options.batchSize
		end := min(start+options.batchSize, len(texts))

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			batch, err := embedder.EmbedTexts(ctx, texts[start:end])
			if err != nil {
				errs[b] = err
				return
			}
			if len(batch) != end-start {
				errs[b] = fmt.Errorf("%w: batch %d returned %d vectors for %d texts",
					ErrEmbeddingMismatch, b, len(batch), end-start)
				return
			}
			copy(vectors[start:end], batch)
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i, vector := range vectors {
		if len(vector) == 0 {
			return nil, fmt.Errorf("%w: empty vector for entry %d", ErrEmbeddingMismatch, i)
		}
	}
	return vectors, nil
}

// Len returns the number of indexed entries.
func (idx *CatalogIndex) Len() int {
	return len(idx.entries)
}

// Entry returns the i-th catalog entry.
func (idx *CatalogIndex) Entry(i int) *core.CatalogEntry {
	return idx.entries[i]
}

// Entries returns the indexed entries. Callers must not mutate the slice.
func (idx *CatalogIndex) Entries() []*core.CatalogEntry {
	return idx.entries
}

// TokenSet returns the cached lexical token set for the i-th entry.
// Callers must not mutate the map.
func (idx *CatalogIndex) TokenSet(i int) map[string]struct{} {
	return idx.tokenSets[i]
}

// MaxComplexity returns the highest complexity score in the catalog.
func (idx *CatalogIndex) MaxComplexity() int {
	return idx.maxComplexity
}

// KnownTypes returns the set of project types present in the catalog.
func (idx *CatalogIndex) KnownTypes() map[string]struct{} {
	types := make(map[string]struct{}, len(idx.knownTypes))
	for t := range idx.knownTypes {
		types[t] = struct{}{}
	}
	return types
}

// Dimensions returns the raw embedding dimension.
func (idx *CatalogIndex) Dimensions() int {
	return idx.dimensions
}

// Projected reports whether the index scores in PCA space.
func (idx *CatalogIndex) Projected() bool {
	return idx.projection != nil
}

// ProjectionComponents returns the projected dimensionality, or 0 when the
// index is not projected.
func (idx *CatalogIndex) ProjectionComponents() int {
	if idx.projection == nil {
		return 0
	}
	return idx.projection.Components()
}

// SemanticScores computes the cosine similarity of a raw query embedding
// against every entry, projecting the query first when the index is
// projected. The result is indexed like Entries.
func (idx *CatalogIndex) SemanticScores(queryVector []float32) []float64 {
	if idx.projection != nil {
		queryVector = idx.projection.Apply(queryVector)
	}

	scores := make([]float64, len(idx.vectors))
	for i, vector := range idx.vectors {
		scores[i] = cosineSimilarity(queryVector, vector)
	}
	return scores
}
