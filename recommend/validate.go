package recommend

import "strings"

// validKeywords are the domain terms a plausible equipment query mentions.
var validKeywords = []string{
	"film", "tournage", "clip", "pub", "interview", "court", "métrage",
	"documentaire", "budget", "prix", "studio", "extérieur", "intérieur",
	"caméra", "lumière", "objectif", "jour", "location", "vidéo", "son",
	"équipement", "matériel", "projecteur", "micro", "éclairage",
	"mariage", "wedding", "photo", "photography", "commercial", "event",
	"corporate", "nature", "portrait", "fashion", "sport", "live",
}

// equipmentContext catches queries that talk about gear without naming a
// production keyword.
var equipmentContext = []string{
	"équipement", "matériel", "camera", "caméra", "film", "photo",
	"tournage", "projet", "location", "besoin",
}

// ValidQuery reports whether a raw query plausibly asks about equipment.
// Matching is case-insensitive substring search over the raw text.
func ValidQuery(query string) bool {
	if tooShort(query) {
		return false
	}
	lower := strings.ToLower(query)
	return containsAny(lower, validKeywords...) || containsAny(lower, equipmentContext...)
}

// Suggestions returns example queries for client UIs.
func Suggestions() []string {
	return []string{
		"court métrage en extérieur avec budget moyen",
		"interview professionnelle en studio avec budget élevé",
		"clip musical dehors budget faible",
		"documentaire nature budget économique",
		"publicité luxe en studio",
		"mariage en extérieur avec grand budget",
		"photographe portrait en intérieur",
		"événement live streaming professionnel",
	}
}
