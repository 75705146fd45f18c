package recommend

import "github.com/cinerent/gearmatch/core"

// Messages carried by results.
const (
	MsgQueryTooShort  = "Query too short. Please be more specific."
	MsgNoCloseMatches = "No close matches found"
)

// Result is the structured outcome of one recommendation request.
// Success is false only when the query itself is unusable; a valid query
// with no candidate above the threshold still succeeds, with an empty list.
type Result struct {
	Success           bool                  `json:"success"`
	Message           string                `json:"message"`
	Query             string                `json:"query,omitempty"`
	DurationDays      int                   `json:"duration_days,omitempty"`
	Recommendations   []core.Recommendation `json:"recommendations"`
	ExtractedFeatures *core.QueryFeatures   `json:"extracted_features,omitempty"`
	ModelConfidence   float64               `json:"model_confidence"`
}

func failure(query, message string) *Result {
	return &Result{
		Message:         message,
		Query:           query,
		Recommendations: []core.Recommendation{},
	}
}
