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

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cinerent/gearmatch/core"
)

// FallbackEngine is the rule-based recommender used when the hybrid
// pipeline cannot initialize, typically because the embedding service is
// unreachable at startup. It keeps the API alive with canned picks.
type FallbackEngine struct {
	logger *slog.Logger
}

var _ Recommender = (*FallbackEngine)(nil)

// NewFallbackEngine returns a ready fallback engine. A nil logger falls
// back to slog.Default.
func NewFallbackEngine(logger *slog.Logger) *FallbackEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackEngine{logger: logger.With("component", "recommend-fallback")}
}

// outdoorKeywords route queries to the outdoor pick.
var outdoorKeywords = []string{"mariage", "wedding", "outdoor", "extérieur", "photo"}

// fallbackPick couples a canned catalog entry with its fixed score.
type fallbackPick struct {
	entry *core.CatalogEntry
	score float64
}

var fallbackPicks = []fallbackPick{
	{
		entry: &core.CatalogEntry{
			ProjectType: "wedding",
			Budget:      core.BudgetHigh,
			Location:    core.LocationOutdoor,
			Camera:      "Canon R6",
			Lens:        "Canon 24-70mm f/2.8",
			Lights:      "Aputure 300x",
			PricePerDay: 450,
			Complexity:  4,
			BudgetTier:  3,
		},
		score: 0.85,
	},
	{
		entry: &core.CatalogEntry{
			ProjectType: "general",
			Budget:      core.BudgetMedium,
			Location:    core.LocationIndoor,
			Camera:      "Canon EOS R",
			Lens:        "Canon 50mm f/1.8",
			Lights:      "Aputure Amaran 100x",
			PricePerDay: 320,
			Complexity:  2,
			BudgetTier:  2,
		},
		score: 0.70,
	},
}

// Recommend implements Recommender with keyword routing over the canned
// picks. It never fails on infrastructure.
func (f *FallbackEngine) Recommend(ctx context.Context, query string, durationDays int) (*Result, error) {
	if durationDays < 1 {
		durationDays = 1
	}

	if tooShort(query) {
		return failure(query, MsgQueryTooShort), nil
	}

	f.logger.Info("serving fallback recommendation", "query", query)

	pick := fallbackPicks[1]
	if containsAny(strings.ToLower(query), outdoorKeywords...) {
		pick = fallbackPicks[0]
	}

	entry := pick.entry
	recommendation := core.Recommendation{
		ProjectType:   entry.ProjectType,
		Budget:        entry.Budget,
		Location:      entry.Location,
		Camera:        entry.Camera,
		Lens:          entry.Lens,
		Lights:        entry.Lights,
		PricePerDay:   entry.PricePerDay,
		TotalPrice:    entry.PricePerDay * durationDays,
		DurationDays:  durationDays,
		Score:         pick.score,
		Confidence:    core.ConfidenceLabel(pick.score),
		Complexity:    entry.Complexity,
		QualityRating: core.QualityRating(pick.score),
	}

	return &Result{
		Success:         true,
		Message:         "Found 1 recommendations",
		Query:           query,
		DurationDays:    durationDays,
		Recommendations: []core.Recommendation{recommendation},
		ModelConfidence: pick.score,
	}, nil
}

// EquipmentStats implements Recommender over the canned picks.
func (f *FallbackEngine) EquipmentStats() *EquipmentStats {
	entries := make([]*core.CatalogEntry, len(fallbackPicks))
	for i, pick := range fallbackPicks {
		entries[i] = pick.entry
	}
	return computeStats(entries)
}

// ModelInfo implements Recommender.
func (f *FallbackEngine) ModelInfo() *ModelInfo {
	return &ModelInfo{
		Initialized:        true,
		Pipeline:           PipelineFallback,
		DataRecords:        len(fallbackPicks),
		Features:           []string{"keyword_routing"},
		SupportedLanguages: []string{"French", "English"},
	}
}
