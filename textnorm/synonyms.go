package textnorm

// synonym maps a query term to its canonical vocabulary form.
// The table is bilingual: French catalog vocabulary is canonical for
// locations, project types and equipment; budget tiers fold to English.
type synonym struct {
	term      string
	canonical string
}

// synonyms is applied in order. Multi-word terms must appear before any
// of their constituent words would fold them apart ("pas cher" before
// "cher" keeps a tight budget from reading as a high one).
var synonyms = []synonym{
	// Budget
	{"faible", "low"},
	{"bas", "low"},
	{"petit", "low"},
	{"économique", "low"},
	{"pas cher", "low"},
	{"budget serré", "low"},
	{"limité", "low"},
	{"moyen", "medium"},
	{"standard", "medium"},
	{"normal", "medium"},
	{"correct", "medium"},
	{"élevé", "high"},
	{"fort", "high"},
	{"grand", "high"},
	{"cher", "high"},
	{"premium", "high"},
	{"luxe", "high"},
	{"haut de gamme", "high"},

	// Location
	{"extérieur", "extérieur"},
	{"ext", "extérieur"},
	{"dehors", "extérieur"},
	{"plein air", "extérieur"},
	{"outdoor", "extérieur"},
	{"nature", "extérieur"},
	{"intérieur", "intérieur"},
	{"int", "intérieur"},
	{"dedans", "intérieur"},
	{"indoor", "intérieur"},
	{"maison", "intérieur"},
	{"studio", "studio"},
	{"atelier", "studio"},
	{"salle", "studio"},

	// Project types
	{"publicité", "pub"},
	{"pub", "pub"},
	{"commercial", "pub"},
	{"marketing", "pub"},
	{"entretien", "interview"},
	{"interview", "interview"},
	{"reportage", "documentaire"},
	{"docu", "documentaire"},
	{"documentaire", "documentaire"},
	{"court", "court-métrage"},
	{"métrage", "court-métrage"},
	{"court-métrage", "court-métrage"},
	{"film", "court-métrage"},
	{"cinéma", "court-métrage"},
	{"clip", "clip"},
	{"musical", "clip"},
	{"musique", "clip"},
	{"vidéo musicale", "clip"},

	// Equipment terms
	{"camera", "caméra"},
	{"appareil", "caméra"},
	{"boitier", "caméra"},
	{"objectif", "objectif"},
	{"lens", "objectif"},
	{"optique", "objectif"},
	{"lumière", "lumières"},
	{"éclairage", "lumières"},
	{"flash", "lumières"},
	{"son", "audio"},
	{"micro", "audio"},
	{"microphone", "audio"},
}

// canonicalIndex supports reverse lookups without scanning the table.
var canonicalIndex = buildCanonicalIndex()

func buildCanonicalIndex() map[string]string {
	index := make(map[string]string, len(synonyms))
	for _, s := range synonyms {
		if _, ok := index[s.term]; !ok {
			index[s.term] = s.canonical
		}
	}
	return index
}

// Canonical returns the canonical form of a query term, if the term is part
// of the synonym vocabulary.
func Canonical(term string) (string, bool) {
	canonical, ok := canonicalIndex[term]
	return canonical, ok
}
