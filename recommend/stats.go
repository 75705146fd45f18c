package recommend

import (
	"math"
	"sort"

	"github.com/cinerent/gearmatch/core"
)

// Pipeline identifiers reported by ModelInfo.
const (
	PipelineHybrid   = "hybrid"
	PipelineFallback = "fallback"
)

// EquipmentStats summarizes the catalog backing an engine.
type EquipmentStats struct {
	TotalConfigurations  int             `json:"total_configurations"`
	Categories           map[string]int  `json:"categories"`
	BudgetDistribution   map[string]int  `json:"budget_distribution"`
	LocationDistribution map[string]int  `json:"location_distribution"`
	AveragePrice         float64         `json:"average_price"`
	PriceRange           PriceRange      `json:"price_range"`
	ComplexityStats      ComplexityStats `json:"complexity_stats"`
	EquipmentBrands      EquipmentBrands `json:"equipment_brands"`
}

// PriceRange is the min and max per-day bundle price.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ComplexityStats summarizes equipment complexity across the catalog.
type ComplexityStats struct {
	Average float64 `json:"average_complexity"`
	Max     int     `json:"max_complexity"`
}

// EquipmentBrands lists the five most frequent picks per equipment slot.
type EquipmentBrands struct {
	Cameras []string `json:"cameras"`
	Lenses  []string `json:"lenses"`
	Lights  []string `json:"lights"`
}

// ModelInfo describes the active recommendation pipeline.
type ModelInfo struct {
	Initialized         bool     `json:"initialized"`
	Pipeline            string   `json:"pipeline"`
	DataRecords         int      `json:"data_records"`
	EmbeddingDimensions int      `json:"embedding_dimensions,omitempty"`
	ProjectedDimensions int      `json:"projected_dimensions,omitempty"`
	Features            []string `json:"features"`
	SupportedLanguages  []string `json:"supported_languages"`
}

func computeStats(entries []*core.CatalogEntry) *EquipmentStats {
	stats := &EquipmentStats{
		TotalConfigurations:  len(entries),
		Categories:           make(map[string]int),
		BudgetDistribution:   make(map[string]int),
		LocationDistribution: make(map[string]int),
	}
	if len(entries) == 0 {
		return stats
	}

	cameras := make(map[string]int)
	lenses := make(map[string]int)
	lights := make(map[string]int)
	priceSum := 0
	complexitySum := 0
	stats.PriceRange.Min = entries[0].PricePerDay

	for _, entry := range entries {
		stats.Categories[entry.ProjectType]++
		stats.BudgetDistribution[entry.Budget]++
		stats.LocationDistribution[entry.Location]++
		cameras[entry.Camera]++
		lenses[entry.Lens]++
		lights[entry.Lights]++

		priceSum += entry.PricePerDay
		if entry.PricePerDay < stats.PriceRange.Min {
			stats.PriceRange.Min = entry.PricePerDay
		}
		if entry.PricePerDay > stats.PriceRange.Max {
			stats.PriceRange.Max = entry.PricePerDay
		}

		complexitySum += entry.Complexity
		if entry.Complexity > stats.ComplexityStats.Max {
			stats.ComplexityStats.Max = entry.Complexity
		}
	}

	n := float64(len(entries))
	stats.AveragePrice = round2(float64(priceSum) / n)
	stats.ComplexityStats.Average = round2(float64(complexitySum) / n)
	stats.EquipmentBrands = EquipmentBrands{
		Cameras: topNames(cameras, 5),
		Lenses:  topNames(lenses, 5),
		Lights:  topNames(lights, 5),
	}
	return stats
}

// topNames returns up to n names ordered by count, most frequent first.
// Ties break alphabetically so the output is stable.
func topNames(counts map[string]int, n int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
