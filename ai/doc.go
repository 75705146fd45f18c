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

// Package ai abstracts the model services behind the recommendation
// pipeline.
//
// Three interfaces cover the surface:
//
//   - Embedder: turns text into vectors
//   - Lemmatizer: reduces query words to dictionary form
//   - AIProvider: bundles both for one-call initialization
//
// The embedder is load-bearing. When it is unreachable at startup the
// service runs a rule-based fallback instead; when it fails on a live
// query the request errors out. The lemmatizer is an optional
// enrichment: AIProvider.Lemmatizer may return nil and lemmatization
// failures never fail a query.
//
// ai/openai talks to OpenAI-compatible endpoints (Ollama, vLLM, the
// hosted API); ai/mock provides test doubles with injectable behavior.
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithEmbeddingModel("embeddinggemma"),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
package ai
