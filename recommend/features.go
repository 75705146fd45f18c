package recommend

import (
	"strings"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/textnorm"
)

// budgetIndicators are probed tier by tier in this order; the first tier
// with any indicator present in the query wins. Substring matching catches
// multi-word leftovers like "pas cher" that survive normalization intact.
var budgetIndicators = []struct {
	tier  string
	terms []string
}{
	{core.BudgetLow, []string{"low", "faible", "petit", "économique", "pas cher", "serré"}},
	{core.BudgetMedium, []string{"medium", "moyen", "normal", "standard", "correct"}},
	{core.BudgetHigh, []string{"high", "élevé", "grand", "cher", "premium", "luxe", "haut"}},
}

// locationOrder fixes the probe order for location detection.
var locationOrder = []string{core.LocationIndoor, core.LocationOutdoor, core.LocationStudio}

// Extractor infers budget, location and project type from a normalized
// query, together with a specificity score that drives attribute boosting.
type Extractor struct {
	knownTypes map[string]struct{}
}

// NewExtractor builds an extractor over the catalog's project types.
func NewExtractor(knownTypes map[string]struct{}) *Extractor {
	if knownTypes == nil {
		knownTypes = map[string]struct{}{}
	}
	return &Extractor{knownTypes: knownTypes}
}

// Extract expects text already run through textnorm.Normalizer. Absent
// attributes stay empty. A recognized project type counts double toward
// specificity since it narrows the catalog the most.
func (e *Extractor) Extract(normalizedQuery string) core.QueryFeatures {
	var features core.QueryFeatures
	tokenSet := textnorm.TokenSet(normalizedQuery)

budgets:
	for _, group := range budgetIndicators {
		for _, term := range group.terms {
			if strings.Contains(normalizedQuery, term) {
				features.Budget = group.tier
				features.Specificity++
				break budgets
			}
		}
	}

	for _, location := range locationOrder {
		if matchesLocation(tokenSet, location) {
			features.Location = location
			features.Specificity++
			break
		}
	}

	for _, token := range textnorm.Tokens(normalizedQuery) {
		if _, ok := e.knownTypes[token]; ok {
			features.ProjectType = token
			features.Specificity += 2
			break
		}
	}

	// Contextual inference when no catalog type is named outright.
	if features.ProjectType == "" {
		switch {
		case containsAny(normalizedQuery, "mariage", "wedding", "photo"):
			features.ProjectType = "pub"
			features.Specificity++
		case containsAny(normalizedQuery, "entretien", "reportage"):
			features.ProjectType = "interview"
			features.Specificity++
		}
	}

	return features
}

// matchesLocation reports whether any query token names the location,
// either directly or through a synonym that folds onto it.
func matchesLocation(tokens map[string]struct{}, location string) bool {
	if _, ok := tokens[location]; ok {
		return true
	}
	for token := range tokens {
		if canonical, ok := textnorm.Canonical(token); ok && canonical == location {
			return true
		}
	}
	return false
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
