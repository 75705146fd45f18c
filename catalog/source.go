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


// Package catalog loads the rentable equipment catalog. A catalog is read
// once per process; the index built from it is never mutated afterwards.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/cinerent/gearmatch/core"
)

// Catalog loading errors
var (
	// ErrEmptyCatalog indicates the source yielded no valid entries.
	ErrEmptyCatalog = errors.New("catalog source yielded no valid entries")

	// ErrMissingColumn indicates a CSV file lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)

// Source loads catalog entries. Implementations return fully prepared
// entries: cleaned text fields, per-day price, complexity score, budget tier
// and content-based ID all assigned and validated.
type Source interface {
	Load(ctx context.Context) ([]*core.CatalogEntry, error)
}

// complexityScore rates a bundle's sophistication from its equipment names.
// Cinema cameras weigh most, followed by enthusiast bodies, fast or L-series
// glass, and professional lighting brands.
func complexityScore(camera, lens, lights string) int {
	score := 1

	switch {
	case strings.Contains(camera, "FX6") || strings.Contains(camera, "C70"):
		score += 2
	case strings.Contains(camera, "R6") || strings.Contains(camera, "A7III"):
		score += 1
	}

	if strings.Contains(lens, "L") || strings.Contains(lens, "2.8") {
		score++
	}

	if strings.Contains(lights, "Aputure") || strings.Contains(lights, "Arri") {
		score++
	}

	return score
}

// fallbackPrice derives a per-day price from the estimated project price
// when no equipment in the bundle appears in the price table.
func fallbackPrice(estimated int, budget string) int {
	if estimated <= 0 {
		estimated = 300
	}
	switch budget {
	case core.BudgetLow:
		return int(float64(estimated) * 0.7)
	case core.BudgetHigh:
		return int(float64(estimated) * 1.4)
	}
	return estimated
}

// finalize fills the derived fields of an entry and validates it.
func finalize(entry *core.CatalogEntry, estimated int) error {
	if entry.PricePerDay == 0 {
		entry.PricePerDay = fallbackPrice(estimated, entry.Budget)
	}
	entry.Complexity = complexityScore(entry.Camera, entry.Lens, entry.Lights)
	entry.BudgetTier = core.BudgetOrdinal(entry.Budget)
	entry.Id = core.IDFromContent(entry.Tuple())
	return core.ValidateCatalogEntry(entry)
}
