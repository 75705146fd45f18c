package catalog

import (
	"context"

	"github.com/cinerent/gearmatch/core"
)

// SampleSource generates a small built-in catalog. It exists for demos and
// tests where no CSV data is mounted, and mirrors the shape of the real
// rental inventory.
type SampleSource struct{}

var _ Source = (*SampleSource)(nil)

// NewSampleSource creates a deterministic sample catalog source.
func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

var (
	sampleTypes     = []string{"court-métrage", "interview", "pub", "documentaire", "clip"}
	sampleBudgets   = []string{core.BudgetLow, core.BudgetMedium, core.BudgetHigh}
	sampleLocations = []string{core.LocationIndoor, core.LocationStudio, core.LocationOutdoor}

	sampleCameras = []string{
		"Sony A6400", "Canon R6", "Sony FX6", "Canon C70", "Sony A7III",
		"Canon EOS R", "Sony A7R IV", "Blackmagic URSA Mini Pro", "Canon C300",
	}
	sampleLenses = []string{
		"Canon 50mm f/1.8", "Sigma 24-70mm f/2.8", "Canon L 24-70mm f/2.8",
		"Sony FE 85mm f/1.4", "Sigma 18-35mm f/1.8", "Canon 85mm f/1.2",
		"Sony FE 24-70mm f/2.8",
	}
	sampleLights = []string{
		"Neewer LED Panel", "Aputure Amaran 100x", "Aputure 300x",
		"Godox SL-60W", "Aputure Amaran 200x", "Litepanels Gemini 2x1",
		"Arri Signature Prime 35mm",
	}
)

// Load generates one entry per (type, budget, location) combination with
// equipment cycled deterministically, 45 entries in total.
func (s *SampleSource) Load(ctx context.Context) ([]*core.CatalogEntry, error) {
	var entries []*core.CatalogEntry
	i := 0
	for _, projectType := range sampleTypes {
		for _, budget := range sampleBudgets {
			for _, location := range sampleLocations {
				entry := &core.CatalogEntry{
					ProjectType: projectType,
					Budget:      budget,
					Location:    location,
					Camera:      sampleCameras[i%len(sampleCameras)],
					Lens:        sampleLenses[i%len(sampleLenses)],
					Lights:      sampleLights[i%len(sampleLights)],
				}
				if err := finalize(entry, sampleEstimate(budget, i)); err != nil {
					return nil, err
				}
				entries = append(entries, entry)
				i++
			}
		}
	}
	return entries, nil
}

// sampleEstimate spreads prices over the realistic range for each tier.
func sampleEstimate(budget string, i int) int {
	switch budget {
	case core.BudgetLow:
		return 150 + (i*37)%250
	case core.BudgetHigh:
		return 600 + (i*61)%600
	}
	return 350 + (i*43)%350
}
