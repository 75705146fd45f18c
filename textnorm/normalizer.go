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


// Package textnorm turns free-form French/English queries into the canonical
// vocabulary the catalog uses, so the lexical and feature stages see one
// spelling per concept.
package textnorm

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cinerent/gearmatch/ai"
	"golang.org/x/text/unicode/norm"
)

var (
	// Keeps word chars, whitespace, hyphens and accented Latin letters.
	nonTextPattern = regexp.MustCompile(`[^\w\s\-àâäéèêëïîôöùûüÿç]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Normalizer canonicalizes query and catalog text. It is stateless apart
// from an optional lemmatizer and safe for concurrent use.
type Normalizer struct {
	lemmatizer ai.Lemmatizer
	logger     *slog.Logger
}

// Option is a functional option for configuring a Normalizer.
type Option func(*Normalizer)

// WithLemmatizer attaches an optional lemmatizer. Its lemmas are appended to
// the normalized text; nil or failing lemmatizers are skipped silently.
func WithLemmatizer(lemmatizer ai.Lemmatizer) Option {
	return func(n *Normalizer) {
		n.lemmatizer = lemmatizer
	}
}

// WithLogger sets the logger used for lemmatization diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger.With("component", "textnorm")
		}
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		logger: slog.Default().With("component", "textnorm"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize canonicalizes text:
//
//  1. NFKC unicode normalization (composes decomposed accents so the
//     character filter keeps them)
//  2. lowercasing and whitespace trimming
//  3. replacement of everything but word chars, whitespace, hyphens and
//     accented letters with spaces
//  4. ordered, word-boundary synonym folding onto catalog vocabulary
//  5. whitespace collapsing
//  6. if a lemmatizer is present, its lemmas are appended to the text
//
// Blank input, or input reduced to nothing by the filter, returns "".
func (n *Normalizer) Normalize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))
	text = nonTextPattern.ReplaceAllString(text, " ")

	for _, s := range synonyms {
		text = replaceTerm(text, s.term, s.canonical)
	}

	text = spacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if text == "" || n.lemmatizer == nil {
		return text
	}

	lemmas, err := n.lemmatizer.Lemmatize(ctx, text)
	if err != nil {
		// The lemmatizer is an aid, never a gate.
		n.logger.Debug("lemmatization skipped", "err", err)
		return text
	}
	if len(lemmas) > 0 {
		text = text + " " + strings.Join(lemmas, " ")
	}

	return text
}

// replaceTerm replaces whole-word occurrences of term with canonical.
// Boundaries are unicode-aware: a word runs over letters, digits and
// underscores, so hyphens and spaces both delimit.
func replaceTerm(text, term, canonical string) string {
	if term == canonical && !strings.Contains(term, " ") {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		j += i
		end := j + len(term)
		if boundaryBefore(text, j) && boundaryAfter(text, end) {
			b.WriteString(text[i:j])
			b.WriteString(canonical)
			i = end
			continue
		}
		// Not a whole word here; move past one rune and keep looking.
		_, size := utf8.DecodeRuneInString(text[j:])
		b.WriteString(text[i : j+size])
		i = j + size
	}
	return b.String()
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
