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


package index

import "errors"

// Index construction errors
var (
	// ErrNoEntries indicates an attempt to build an index over an empty catalog.
	ErrNoEntries = errors.New("cannot build index: no catalog entries")

	// ErrEmbedderRequired indicates a nil embedder was passed to Build.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrNormalizerRequired indicates a nil normalizer was passed to Build.
	ErrNormalizerRequired = errors.New("normalizer is required")

	// ErrEmbeddingMismatch indicates the embedder returned the wrong number of vectors.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")

	// ErrProjectionFit indicates the PCA projection could not be fit.
	// The index falls back to full-dimensional similarity in that case.
	ErrProjectionFit = errors.New("projection fit failed")
)
