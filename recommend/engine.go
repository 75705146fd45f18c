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

// Package recommend implements the hybrid recommendation engine: query
// normalization and feature extraction, semantic plus lexical scoring over
// the catalog index, and diversity-aware selection of the final list. A
// rule-based fallback engine serves when the hybrid pipeline cannot start.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cinerent/gearmatch/ai"
	"github.com/cinerent/gearmatch/index"
	"github.com/cinerent/gearmatch/textnorm"
)

// MinQueryLength is the minimum number of characters a usable query has.
const MinQueryLength = 3

// Recommender is the capability both engines expose.
type Recommender interface {
	// Recommend scores the query against the catalog and returns a ranked,
	// diverse result list. The error is non-nil only for infrastructure
	// failures; unusable queries produce a Result with Success false.
	Recommend(ctx context.Context, query string, durationDays int) (*Result, error)

	// EquipmentStats summarizes the catalog backing the engine.
	EquipmentStats() *EquipmentStats

	// ModelInfo describes the active pipeline.
	ModelInfo() *ModelInfo
}

// Engine is the hybrid recommender.
type Engine struct {
	index      *index.CatalogIndex
	embedder   ai.Embedder
	normalizer *textnorm.Normalizer
	extractor  *Extractor
	topK       int
	threshold  float64
	logger     *slog.Logger
}

var _ Recommender = (*Engine)(nil)

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTopK caps the number of returned recommendations.
func WithTopK(k int) EngineOption {
	return func(e *Engine) {
		if k > 0 {
			e.topK = k
		}
	}
}

// WithQualityThreshold sets the minimum normalized score a candidate needs
// to be returned.
func WithQualityThreshold(threshold float64) EngineOption {
	return func(e *Engine) {
		if threshold >= 0 {
			e.threshold = threshold
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.With("component", "recommend-engine")
		}
	}
}

// NewEngine wires the hybrid engine over a built catalog index.
func NewEngine(idx *index.CatalogIndex, embedder ai.Embedder, normalizer *textnorm.Normalizer, opts ...EngineOption) (*Engine, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	e := &Engine{
		index:      idx,
		embedder:   embedder,
		normalizer: normalizer,
		extractor:  NewExtractor(idx.KnownTypes()),
		topK:       DefaultTopK,
		threshold:  DefaultQualityThreshold,
		logger:     slog.Default().With("component", "recommend-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Recommend implements Recommender.
func (e *Engine) Recommend(ctx context.Context, query string, durationDays int) (*Result, error) {
	if durationDays < 1 {
		durationDays = 1
	}

	if tooShort(query) {
		e.logger.Debug("query rejected", "reason", "too short")
		return failure(query, MsgQueryTooShort), nil
	}

	normalized := e.normalizer.Normalize(ctx, query)
	if normalized == "" {
		e.logger.Debug("query rejected", "reason", "empty after normalization")
		return failure(query, MsgQueryTooShort), nil
	}

	features := e.extractor.Extract(normalized)

	queryVector, err := e.embedder.EmbedText(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedderUnavailable, err)
	}

	candidates := scoreCandidates(e.index, normalized, queryVector, features)
	recommendations, confidence := selectDiverse(candidates, e.topK, e.threshold, durationDays)

	message := MsgNoCloseMatches
	if len(recommendations) > 0 {
		message = fmt.Sprintf("Found %d high-quality recommendations", len(recommendations))
	}

	e.logger.Info("query served",
		"results", len(recommendations),
		"confidence", confidence,
		"specificity", features.Specificity)

	return &Result{
		Success:           true,
		Message:           message,
		Query:             query,
		DurationDays:      durationDays,
		Recommendations:   recommendations,
		ExtractedFeatures: &features,
		ModelConfidence:   confidence,
	}, nil
}

// EquipmentStats implements Recommender.
func (e *Engine) EquipmentStats() *EquipmentStats {
	return computeStats(e.index.Entries())
}

// ModelInfo implements Recommender.
func (e *Engine) ModelInfo() *ModelInfo {
	return &ModelInfo{
		Initialized:         true,
		Pipeline:            PipelineHybrid,
		DataRecords:         e.index.Len(),
		EmbeddingDimensions: e.index.Dimensions(),
		ProjectedDimensions: e.index.ProjectionComponents(),
		Features: []string{
			"semantic_similarity",
			"keyword_matching",
			"feature_boosting",
			"quality_scoring",
			"price_appropriateness",
			"pca_projection",
		},
		SupportedLanguages: []string{"French", "English"},
	}
}

func tooShort(query string) bool {
	return len([]rune(strings.TrimSpace(query))) < MinQueryLength
}
