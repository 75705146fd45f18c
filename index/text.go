package index

import (
	"strings"

	"github.com/cinerent/gearmatch/core"
)

// embeddingText builds the rich text representation of an entry for
// embedding: every attribute with a slot label, plus a semantic enrichment
// phrase for project types whose vocabulary queries rarely use verbatim.
func embeddingText(entry *core.CatalogEntry) string {
	parts := []string{
		entry.ProjectType,
		entry.Budget + " budget",
		entry.Location + " location",
		"camera " + entry.Camera,
		"lens " + entry.Lens,
		"lights " + entry.Lights,
	}

	switch entry.ProjectType {
	case "mariage":
		parts = append(parts, "wedding photography outdoor event")
	case "interview":
		parts = append(parts, "professional interview setup indoor studio")
	case "documentaire":
		parts = append(parts, "documentary filming natural lighting")
	}

	return strings.Join(parts, " ")
}

// lexicalText is the attribute-only projection of an entry. Token sets for
// the lexical scorer are built from this, not from the full embedding text,
// so equipment names don't dilute the Jaccard overlap.
func lexicalText(entry *core.CatalogEntry) string {
	return entry.ProjectType + " " + entry.Budget + " " + entry.Location
}
