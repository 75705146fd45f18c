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

package mock

import "github.com/cinerent/gearmatch/ai"

// MockProvider bundles the mock embedder and lemmatizer behind the
// ai.AIProvider interface.
type MockProvider struct {
	embedder   *MockEmbedder
	lemmatizer *MockLemmatizer
}

// NewMockProvider creates a provider with default mock services. Tests
// needing to inject behavior should build the mocks themselves and use
// NewMockProviderWithServices.
func NewMockProvider() ai.AIProvider {
	return NewMockProviderWithServices(NewMockEmbedder(), NewMockLemmatizer())
}

// NewMockProviderWithServices wires custom mocks into a provider. A nil
// lemmatizer simulates a deployment without lemmatization.
func NewMockProviderWithServices(embedder *MockEmbedder, lemmatizer *MockLemmatizer) ai.AIProvider {
	return &MockProvider{embedder: embedder, lemmatizer: lemmatizer}
}

func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Lemmatizer returns nil when the provider was built without one, which
// is a valid AIProvider state the pipeline must handle.
func (p *MockProvider) Lemmatizer() ai.Lemmatizer {
	if p.lemmatizer == nil {
		return nil
	}
	return p.lemmatizer
}

func (p *MockProvider) Close() error {
	return nil
}
