package service

import (
	"strings"

	"stock-advisor-api/internal/advisor/dto"
)

// StructureAnalysis derives a machine-readable recommendation from a
// narrative analysis. The scan is case-insensitive and deterministic:
// running it twice on the same narrative yields identical output.
func StructureAnalysis(narrative, query string) dto.StructuredAnalysis {
	lower := strings.ToLower(narrative)

	recommendation := dto.RecommendationHold
	switch {
	case strings.Contains(lower, "buy") && !strings.Contains(lower, "don't buy"):
		if strings.Contains(lower, "strong") {
			recommendation = dto.RecommendationStrongBuy
		} else {
			recommendation = dto.RecommendationBuy
		}
	case strings.Contains(lower, "sell"):
		if strings.Contains(lower, "strong") {
			recommendation = dto.RecommendationStrongSell
		} else {
			recommendation = dto.RecommendationSell
		}
	}

	confidence := dto.ConfidenceMedium
	switch {
	case strings.Contains(lower, "high confidence") || strings.Contains(lower, "very confident"):
		confidence = dto.ConfidenceHigh
	case strings.Contains(lower, "low confidence") || strings.Contains(lower, "uncertain"):
		confidence = dto.ConfidenceLow
	}

	var color, icon string
	switch {
	case strings.Contains(recommendation, "BUY"):
		color = "#10b981"
		icon = "✅"
	case strings.Contains(recommendation, "SELL"):
		color = "#ef4444"
		icon = "❌"
	default:
		color = "#f59e0b"
		icon = "⏳"
	}

	return dto.StructuredAnalysis{
		Recommendation: recommendation,
		Confidence:     confidence,
		Color:          color,
		Icon:           icon,
		Query:          query,
	}
}
