package planning

import "fmt"

// Risk levels reported by assessRisk.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// assessRisk rates a forecast against the available stock. Peak demand
// beyond stock is high risk; approaching stock, or a high sustained
// average, is medium.
func assessRisk(stock, peakDemand int, avgDemand float64) RiskAssessment {
	level := RiskLow
	switch {
	case peakDemand > stock:
		level = RiskHigh
	case float64(peakDemand) > float64(stock)*0.8:
		level = RiskMedium
	case avgDemand > float64(stock)*0.6:
		level = RiskMedium
	}

	return RiskAssessment{
		Level:       level,
		Score:       round2((float64(peakDemand) - avgDemand) / (avgDemand + 1)),
		Description: riskDescription(level),
	}
}

func riskDescription(level string) string {
	switch level {
	case RiskLow:
		return "Demand is well within capacity. Low risk of stockouts."
	case RiskMedium:
		return "Demand approaches capacity limits. Monitor closely."
	case RiskHigh:
		return "High risk of stockouts. Immediate action required."
	}
	return "Unknown risk level"
}

// buildAdvice derives inventory recommendations from the forecast shape.
func buildAdvice(stock int, avgDemand float64, peakDemand int, stdDemand float64, daily []DailyPrediction) []Advice {
	advice := make([]Advice, 0)

	if peakDemand > stock {
		advice = append(advice, Advice{
			Type:     "stock_shortage",
			Priority: "high",
			Message: fmt.Sprintf("Peak demand (%d) exceeds current stock (%d). Consider increasing inventory.",
				peakDemand, stock),
			Action: "Increase stock or limit bookings during peak periods",
			Impact: "High risk of lost revenue",
		})
	}

	if avgDemand > float64(stock)*0.7 {
		advice = append(advice, Advice{
			Type:     "high_utilization",
			Priority: "medium",
			Message:  fmt.Sprintf("High utilization expected (avg: %.1f/%d)", avgDemand, stock),
			Action:   "Monitor availability closely and consider dynamic pricing",
			Impact:   "Potential booking conflicts",
		})
	}

	if stdDemand > avgDemand*0.5 {
		advice = append(advice, Advice{
			Type:     "variable_demand",
			Priority: "medium",
			Message:  fmt.Sprintf("High demand variability detected (std: %.1f)", stdDemand),
			Action:   "Implement flexible booking policies",
			Impact:   "Unpredictable revenue streams",
		})
	}

	lowDays := 0
	for _, day := range daily {
		if day.Demand <= 1 {
			lowDays++
		}
	}
	if float64(lowDays) > float64(len(daily))*0.3 {
		advice = append(advice, Advice{
			Type:     "low_demand",
			Priority: "low",
			Message:  fmt.Sprintf("Low demand expected for %d days", lowDays),
			Action:   "Consider maintenance, promotions, or alternative revenue streams",
			Impact:   "Opportunity for equipment maintenance",
		})
	}

	return advice
}

// buildInsights summarizes the forecast in plain sentences: the peak day,
// months running hot, and the weekend/weekday balance.
func buildInsights(daily []DailyPrediction, avgDemand float64, peakDemand int) []string {
	insights := make([]string, 0)

	for _, day := range daily {
		if day.Demand == peakDemand {
			insights = append(insights, fmt.Sprintf("Peak demand expected on %s (%s)", day.Date, day.DayOfWeek))
			break
		}
	}

	monthOrder := make([]string, 0)
	monthly := make(map[string]*demandStats)
	for _, day := range daily {
		stats := monthly[day.Month]
		if stats == nil {
			stats = &demandStats{}
			monthly[day.Month] = stats
			monthOrder = append(monthOrder, day.Month)
		}
		stats.add(float64(day.Demand))
	}
	for _, month := range monthOrder {
		if monthly[month].mean(0) > avgDemand*1.2 {
			insights = append(insights, fmt.Sprintf("Higher than average demand expected in %s", month))
		}
	}

	var weekend, weekday demandStats
	for _, day := range daily {
		if day.IsWeekend {
			weekend.add(float64(day.Demand))
		} else {
			weekday.add(float64(day.Demand))
		}
	}
	if weekend.n > 0 && weekday.n > 0 {
		switch {
		case weekend.mean(0) > weekday.mean(0)*1.2:
			insights = append(insights, "Significantly higher demand expected on weekends")
		case weekday.mean(0) > weekend.mean(0)*1.2:
			insights = append(insights, "Business/weekday bookings dominate this period")
		}
	}

	return insights
}
