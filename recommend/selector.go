package recommend

import (
	"math"
	"sort"

	"github.com/cinerent/gearmatch/core"
)

// Selection defaults, overridable through engine options.
const (
	DefaultTopK             = 5
	DefaultQualityThreshold = 0.15
)

// selectDiverse walks the candidates in descending score order and keeps up
// to k of them. A candidate is skipped when at least two already accepted
// combinations share two or more of its three attributes, or when its score
// falls under the threshold. Only accepted combinations count toward the
// similarity check, so a rejected candidate never blocks later ones.
//
// The second return value is the mean of the accepted raw scores, 0 when
// nothing was accepted. Only the per-recommendation scores are rounded
// for presentation; the mean is reported as computed.
func selectDiverse(candidates []scoredCandidate, k int, threshold float64, durationDays int) ([]core.Recommendation, float64) {
	ordered := make([]scoredCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].score > ordered[j].score
	})

	recommendations := make([]core.Recommendation, 0, k)
	seen := make([]core.ComboKey, 0, k)
	scoreSum := 0.0

	for _, candidate := range ordered {
		if len(recommendations) >= k {
			break
		}

		key := candidate.entry.ComboKey()
		similar := 0
		for _, accepted := range seen {
			if key.SharedFields(accepted) >= 2 {
				similar++
			}
		}
		if similar >= 2 {
			continue
		}

		if candidate.score < threshold {
			continue
		}

		entry := candidate.entry
		score := round3(candidate.score)
		seen = append(seen, key)
		scoreSum += candidate.score

		recommendations = append(recommendations, core.Recommendation{
			ProjectType:   entry.ProjectType,
			Budget:        entry.Budget,
			Location:      entry.Location,
			Camera:        entry.Camera,
			Lens:          entry.Lens,
			Lights:        entry.Lights,
			PricePerDay:   entry.PricePerDay,
			TotalPrice:    entry.PricePerDay * durationDays,
			DurationDays:  durationDays,
			Score:         score,
			Confidence:    core.ConfidenceLabel(candidate.score),
			Complexity:    entry.Complexity,
			QualityRating: core.QualityRating(candidate.score),
		})
	}

	confidence := 0.0
	if len(recommendations) > 0 {
		confidence = scoreSum / float64(len(recommendations))
	}
	return recommendations, confidence
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
