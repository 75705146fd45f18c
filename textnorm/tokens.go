package textnorm

import "strings"

// Tokens splits normalized text into its whitespace-separated words.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// TokenSet returns the distinct words of normalized text.
// The lexical scorer compares token sets with Jaccard similarity.
func TokenSet(text string) map[string]struct{} {
	fields := strings.Fields(text)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
