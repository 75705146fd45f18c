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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// LemmatizerHost is the base URL for the lemmatization service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	LemmatizerHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// LemmatizerModel is the chat model identifier to use for lemmatization.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	// Leave empty to disable lemmatization; the pipeline degrades gracefully.
	LemmatizerModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithLemmatizerHost sets the lemmatizer service host URL.
func WithLemmatizerHost(host string) ConfigOption {
	return func(c *Config) {
		c.LemmatizerHost = host
	}
}

// WithHost sets both embedding and lemmatizer hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.LemmatizerHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithLemmatizerModel sets the lemmatizer model identifier.
// An empty model disables lemmatization.
func WithLemmatizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.LemmatizerModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// Lemmatization is disabled by default; it is an optional enrichment.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:   defaultHost,
		LemmatizerHost:  defaultHost,
		EmbeddingModel:  "embeddinggemma",
		LemmatizerModel: "",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithHost("http://localhost:11434/v1"),
//       WithEmbeddingModel("text-embedding-3-small"),
//       WithLemmatizerModel("qwen2.5:3b"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LemmatizationEnabled reports whether a lemmatizer model is configured.
func (c *Config) LemmatizationEnabled() bool {
	return c.LemmatizerModel != ""
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	if c.LemmatizerHost != "" && !strings.HasSuffix(c.LemmatizerHost, "/v1") {
		c.LemmatizerHost = strings.TrimSuffix(c.LemmatizerHost, "/")
		c.LemmatizerHost = c.LemmatizerHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
// Lemmatizer settings are only required when a lemmatizer model is set.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.LemmatizationEnabled() && c.LemmatizerHost == "" {
		return errors.New("ai config: LemmatizerHost is required when LemmatizerModel is set")
	}
	return nil
}
