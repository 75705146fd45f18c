package planning

import "github.com/cinerent/gearmatch/core"

// Forecast is the structured demand outlook for one material over a period.
type Forecast struct {
	MaterialId      core.ID           `json:"material_id"`
	MaterialName    string            `json:"material_name,omitempty"`
	Period          Period            `json:"period"`
	Summary         Summary           `json:"summary"`
	Daily           []DailyPrediction `json:"daily_predictions"`
	Risk            RiskAssessment    `json:"risk_assessment"`
	Performance     Performance       `json:"model_performance"`
	Recommendations []Advice          `json:"recommendations"`
	Insights        []string          `json:"insights"`
}

// Period is the forecast window, dates formatted as YYYY-MM-DD.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// Summary aggregates the daily predictions.
type Summary struct {
	AverageDemand     float64 `json:"average_demand"`
	MaximumDemand     int     `json:"maximum_demand"`
	MinimumDemand     int     `json:"minimum_demand"`
	StandardDeviation float64 `json:"standard_deviation"`
	TotalDemand       int     `json:"total_predicted_demand"`
	OverallConfidence float64 `json:"overall_confidence"`
}

// DailyPrediction is the demand estimate for a single day.
type DailyPrediction struct {
	Date       string  `json:"date"`
	Demand     int     `json:"predicted_demand"`
	Confidence float64 `json:"confidence"`
	DayOfWeek  string  `json:"day_of_week"`
	IsWeekend  bool    `json:"is_weekend"`
	Month      string  `json:"month"`
	Season     string  `json:"season"`
}

// RiskAssessment rates the forecast against the material's stock.
type RiskAssessment struct {
	Level       string  `json:"level"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Performance reports the holdout evaluation of the fitted profile.
type Performance struct {
	Accuracy float64 `json:"accuracy"`
	MAE      float64 `json:"mae"`
}

// Advice is one actionable inventory recommendation.
type Advice struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
}

// ModelInfo describes the fitted forecaster.
type ModelInfo struct {
	Trained     bool     `json:"trained"`
	Estimator   string   `json:"estimator"`
	Accuracy    float64  `json:"accuracy"`
	MAE         float64  `json:"mae"`
	DataRecords int      `json:"data_records"`
	Features    []string `json:"features"`
}
