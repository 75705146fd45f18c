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

// Package gearmatch wires the equipment catalog, the AI provider and the
// recommendation engine into a single service aggregate, plus the
// badger-backed rental history used by the demand planner.
package gearmatch

import (
	"context"
	"log/slog"

	"github.com/cinerent/gearmatch/ai"
	"github.com/cinerent/gearmatch/ai/openai"
	"github.com/cinerent/gearmatch/catalog"
	"github.com/cinerent/gearmatch/index"
	"github.com/cinerent/gearmatch/recommend"
	"github.com/cinerent/gearmatch/textnorm"
)

// Service is the top-level recommendation aggregate. It owns the AI provider
// and the engine picked at startup: the full hybrid pipeline when catalog
// loading and index construction succeed, the rule-based fallback otherwise.
// The choice is made once; the engine is never swapped per call.
type Service struct {
	provider ai.AIProvider
	engine   recommend.Recommender
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig   *ai.Config
	provider   ai.AIProvider
	source     catalog.Source
	engineOpts []recommend.EngineOption
	logger     *slog.Logger
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects an AI provider directly, bypassing provider
// construction. The service takes ownership and closes it.
func WithProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithCatalogSource sets the catalog source. Defaults to the built-in sample
// catalog.
func WithCatalogSource(source catalog.Source) ServiceOption {
	return func(o *serviceOptions) {
		o.source = source
	}
}

// WithEngineOptions forwards options to the recommendation engine.
func WithEngineOptions(opts ...recommend.EngineOption) ServiceOption {
	return func(o *serviceOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithServiceLogger sets the logger for the service and its engine.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService builds the recommendation service. Initialization failures
// (provider, catalog, index) degrade to the fallback engine instead of
// failing: the service always answers, matching the original deployment
// behavior.
func NewService(ctx context.Context, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
		source:   catalog.NewSampleSource(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger.With("component", "service")

	service := &Service{logger: logger}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			logger.Warn("AI provider unavailable, using fallback engine", "err", err)
			service.engine = recommend.NewFallbackEngine(options.logger)
			return service, nil
		}
	}
	service.provider = provider

	engine, err := buildEngine(ctx, provider, options)
	if err != nil {
		logger.Warn("engine initialization failed, using fallback engine", "err", err)
		service.engine = recommend.NewFallbackEngine(options.logger)
		return service, nil
	}

	service.engine = engine
	return service, nil
}

// buildEngine loads the catalog, builds the index and assembles the full
// hybrid engine.
func buildEngine(ctx context.Context, provider ai.AIProvider, options *serviceOptions) (recommend.Recommender, error) {
	entries, err := options.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	normOpts := []textnorm.Option{textnorm.WithLogger(options.logger)}
	if lemmatizer := provider.Lemmatizer(); lemmatizer != nil {
		normOpts = append(normOpts, textnorm.WithLemmatizer(lemmatizer))
	}
	normalizer := textnorm.New(normOpts...)

	idx, err := index.Build(ctx, entries, provider.Embedder(), normalizer,
		index.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	engineOpts := append([]recommend.EngineOption{recommend.WithLogger(options.logger)},
		options.engineOpts...)
	return recommend.NewEngine(idx, provider.Embedder(), normalizer, engineOpts...)
}

// Recommend runs a recommendation query through the active engine.
func (s *Service) Recommend(ctx context.Context, query string, durationDays int) (*recommend.Result, error) {
	return s.engine.Recommend(ctx, query, durationDays)
}

// EquipmentStats returns catalog statistics from the active engine.
func (s *Service) EquipmentStats() *recommend.EquipmentStats {
	return s.engine.EquipmentStats()
}

// ModelInfo describes the active pipeline.
func (s *Service) ModelInfo() *recommend.ModelInfo {
	return s.engine.ModelInfo()
}

// ValidateQuery reports whether a query looks like an equipment request.
func (s *Service) ValidateQuery(query string) bool {
	return recommend.ValidQuery(query)
}

// Suggestions returns example queries for the CLI help surface.
func (s *Service) Suggestions() []string {
	return recommend.Suggestions()
}

// Close releases the AI provider.
func (s *Service) Close() error {
	if s.provider == nil {
		return nil
	}
	return s.provider.Close()
}
