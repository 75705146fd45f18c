package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	cases := []struct {
		name      string
		stock     int
		peak      int
		avg       float64
		wantLevel string
	}{
		{"peak exceeds stock", 10, 11, 3, RiskHigh},
		{"peak near stock", 10, 9, 3, RiskMedium},
		{"sustained high average", 10, 5, 7, RiskMedium},
		{"comfortable headroom", 10, 5, 2, RiskLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			risk := assessRisk(tc.stock, tc.peak, tc.avg)
			assert.Equal(t, tc.wantLevel, risk.Level)
			assert.Equal(t, riskDescription(tc.wantLevel), risk.Description)
		})
	}

	t.Run("score relates peak to average", func(t *testing.T) {
		risk := assessRisk(10, 11, 3)
		assert.Equal(t, 2.0, risk.Score)
	})
}

func TestBuildAdvice(t *testing.T) {
	flat := []DailyPrediction{
		{Demand: 3}, {Demand: 3}, {Demand: 3}, {Demand: 3},
	}

	t.Run("quiet forecast needs no advice", func(t *testing.T) {
		assert.Empty(t, buildAdvice(10, 3, 3, 0, flat))
	})

	t.Run("shortage and utilization", func(t *testing.T) {
		types := adviceTypes(buildAdvice(4, 5, 6, 0, flat))
		assert.Contains(t, types, "stock_shortage")
		assert.Contains(t, types, "high_utilization")
	})

	t.Run("variable demand", func(t *testing.T) {
		types := adviceTypes(buildAdvice(10, 2, 4, 1.5, flat))
		assert.Contains(t, types, "variable_demand")
	})

	t.Run("mostly idle period", func(t *testing.T) {
		idle := []DailyPrediction{
			{Demand: 1}, {Demand: 1}, {Demand: 1}, {Demand: 4},
		}
		types := adviceTypes(buildAdvice(10, 1.75, 4, 1.3, idle))
		assert.Contains(t, types, "low_demand")
	})
}

func TestBuildInsights(t *testing.T) {
	daily := []DailyPrediction{
		{Date: "2025-07-04", DayOfWeek: "Friday", Month: "July", Demand: 2, IsWeekend: false},
		{Date: "2025-07-05", DayOfWeek: "Saturday", Month: "July", Demand: 5, IsWeekend: true},
		{Date: "2025-07-06", DayOfWeek: "Sunday", Month: "July", Demand: 5, IsWeekend: true},
		{Date: "2025-07-07", DayOfWeek: "Monday", Month: "July", Demand: 2, IsWeekend: false},
	}

	insights := buildInsights(daily, 3.5, 5)
	assert.Contains(t, insights, "Peak demand expected on 2025-07-05 (Saturday)")
	assert.Contains(t, insights, "Significantly higher demand expected on weekends")
}

func TestBuildInsightsWeekdayDominance(t *testing.T) {
	daily := []DailyPrediction{
		{Date: "2025-07-04", DayOfWeek: "Friday", Month: "July", Demand: 5, IsWeekend: false},
		{Date: "2025-07-05", DayOfWeek: "Saturday", Month: "July", Demand: 1, IsWeekend: true},
	}

	insights := buildInsights(daily, 3, 5)
	assert.Contains(t, insights, "Business/weekday bookings dominate this period")
}
