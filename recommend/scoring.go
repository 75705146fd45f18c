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
	"math"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/index"
	"github.com/cinerent/gearmatch/textnorm"
)

// Weights of the scoring stages. The semantic and lexical signals are
// blended first, then multiplied by the attribute boost, the equipment
// quality factor and the price appropriateness factor.
const (
	semanticWeight      = 0.4
	lexicalWeight       = 0.3
	exactMatchBonus     = 0.1
	baseBoostStrength   = 0.3
	boostPerSpecificity = 0.1
	qualityWeight       = 0.2
	priceFloor          = 0.8
	priceWeight         = 0.2
	budgetTierSpan      = 3
)

// scoredCandidate pairs a catalog entry with its batch-normalized score.
type scoredCandidate struct {
	entry *core.CatalogEntry
	score float64
}

// scoreCandidates scores every indexed entry against the query and
// normalizes the batch by its maximum, so the best candidate lands at 1.
// A batch where nothing scores above zero is returned as is.
func scoreCandidates(idx *index.CatalogIndex, normalizedQuery string, queryVector []float32, features core.QueryFeatures) []scoredCandidate {
	semantic := idx.SemanticScores(queryVector)
	queryTokens := textnorm.TokenSet(normalizedQuery)
	boostStrength := baseBoostStrength + boostPerSpecificity*float64(features.Specificity)
	queryTier := core.BudgetOrdinal(features.Budget)
	maxComplexity := idx.MaxComplexity()

	candidates := make([]scoredCandidate, idx.Len())
	maxScore := 0.0
	for i := range candidates {
		entry := idx.Entry(i)
		candidates[i].entry = entry

		lexical := lexicalScore(queryTokens, idx.TokenSet(i))

		boost := 1.0
		if features.ProjectType != "" && entry.ProjectType == features.ProjectType {
			boost += boostStrength
		}
		if features.Budget != "" && entry.Budget == features.Budget {
			boost += boostStrength
		}
		if features.Location != "" && entry.Location == features.Location {
			boost += boostStrength
		}

		quality := 0.0
		if maxComplexity > 0 {
			quality = float64(entry.Complexity) / float64(maxComplexity)
		}

		// Without a stated budget every tier is equally appropriate.
		price := 1.0
		if queryTier > 0 {
			price = 1 - math.Abs(float64(entry.BudgetTier-queryTier))/budgetTierSpan
		}

		base := semanticWeight*semantic[i] + lexicalWeight*lexical
		score := base * boost * (1 + qualityWeight*quality) * (priceFloor + priceWeight*price)
		candidates[i].score = score
		if score > maxScore {
			maxScore = score
		}
	}

	if maxScore > 0 {
		for i := range candidates {
			candidates[i].score /= maxScore
		}
	}
	return candidates
}

// lexicalScore is the Jaccard overlap of the query and entry token sets
// plus a flat bonus per exactly matched token.
func lexicalScore(queryTokens, entryTokens map[string]struct{}) float64 {
	intersection := 0
	for token := range queryTokens {
		if _, ok := entryTokens[token]; ok {
			intersection++
		}
	}
	union := len(queryTokens) + len(entryTokens) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection)/float64(union) + exactMatchBonus*float64(intersection)
}
