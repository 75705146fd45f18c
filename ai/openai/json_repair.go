package openai

import "regexp"

// Matches an object key missing its opening quote, e.g. `{lemmas":` or `, lemmas":`.
var unquotedKeyPattern = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z_ ]*)("\s*:)`)

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It currently handles keys missing their opening quote.
func repairJSON(s string) string {
	return unquotedKeyPattern.ReplaceAllString(s, `$1"$2$3`)
}
