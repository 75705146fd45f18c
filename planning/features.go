package planning

import (
	"math"
	"strings"
	"time"
)

// TemporalFeatures capture the calendar signals equipment demand follows.
// Weekday is zero-based on Monday; Season runs 1 (winter) to 4 (autumn).
type TemporalFeatures struct {
	Month            int
	Week             int
	Weekday          int
	Quarter          int
	Season           int
	IsWeekend        bool
	IsVacation       bool
	IsWeddingSeason  bool
	IsBusinessSeason bool
	IsHolidayPeriod  bool
	MonthSin         float64
	MonthCos         float64
	WeekSin          float64
	WeekCos          float64
}

// ExtractTemporalFeatures derives the calendar features for one date.
func ExtractTemporalFeatures(date time.Time) TemporalFeatures {
	month := int(date.Month())
	_, week := date.ISOWeek()
	weekday := (int(date.Weekday()) + 6) % 7

	return TemporalFeatures{
		Month:            month,
		Week:             week,
		Weekday:          weekday,
		Quarter:          (month-1)/3 + 1,
		Season:           SeasonOf(month),
		IsWeekend:        weekday >= 5,
		IsVacation:       month == 7 || month == 8 || month == 12 || month == 1,
		IsWeddingSeason:  month >= 5 && month <= 9,
		IsBusinessSeason: (month >= 3 && month <= 5) || (month >= 9 && month <= 11),
		IsHolidayPeriod:  month == 12 || month == 1,
		MonthSin:         math.Sin(2 * math.Pi * float64(month) / 12),
		MonthCos:         math.Cos(2 * math.Pi * float64(month) / 12),
		WeekSin:          math.Sin(2 * math.Pi * float64(week) / 52),
		WeekCos:          math.Cos(2 * math.Pi * float64(week) / 52),
	}
}

// SeasonOf maps a month to its season, 1 winter through 4 autumn.
func SeasonOf(month int) int {
	switch {
	case month == 12 || month <= 2:
		return 1
	case month <= 5:
		return 2
	case month <= 8:
		return 3
	}
	return 4
}

// SeasonName returns the English season name for a month.
func SeasonName(month int) string {
	switch SeasonOf(month) {
	case 1:
		return "Winter"
	case 2:
		return "Spring"
	case 3:
		return "Summer"
	}
	return "Autumn"
}

// categoryMarkers map name fragments to equipment categories, probed in
// order. Camera is checked first so "Camera Sony" never lands in audio via
// the "son" fragment.
var categoryMarkers = []struct {
	category string
	terms    []string
}{
	{"camera", []string{"camera", "caméra", "appareil", "boitier"}},
	{"objectif", []string{"objectif", "lens", "optique"}},
	{"lumiere", []string{"lumière", "light", "éclairage", "led", "flash"}},
	{"audio", []string{"micro", "audio", "son", "microphone"}},
	{"stabilisation", []string{"stabilisateur", "gimbal", "steadicam"}},
	{"support", []string{"trépied", "tripod", "support"}},
}

// InferCategory guesses an equipment category from a material name.
// Unrecognized names fall into "autre".
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, marker := range categoryMarkers {
		for _, term := range marker.terms {
			if strings.Contains(lower, term) {
				return marker.category
			}
		}
	}
	return "autre"
}
