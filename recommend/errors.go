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

package recommend

import "errors"

var (
	// ErrIndexRequired indicates NewEngine was called without a catalog index.
	ErrIndexRequired = errors.New("catalog index is required")

	// ErrEmbedderRequired indicates NewEngine was called without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrNormalizerRequired indicates NewEngine was called without a text normalizer.
	ErrNormalizerRequired = errors.New("text normalizer is required")

	// ErrEmbedderUnavailable wraps embedding failures during query handling.
	ErrEmbedderUnavailable = errors.New("embedding service unavailable")
)
