package service

import (
	"strings"

	"stock-advisor-api/internal/advisor/dto"
)

var positiveWords = []string{
	"breakthrough", "exceeds", "strong", "growth", "upgrade", "positive",
	"success", "innovation", "record", "beat", "surge", "rally", "bullish",
	"gains", "profits", "revenue", "earnings", "outperform", "buy", "recommend",
}

var negativeWords = []string{
	"challenges", "decline", "falls", "concerns", "negative", "losses",
	"downgrade", "risks", "fails", "drops", "crash", "bearish", "disappoints",
	"cuts", "reduces", "warning", "debt", "lawsuit", "investigation",
}

// AnalyzeSentiment classifies text as positive, negative or neutral by
// counting case-insensitive substring hits against two fixed word lists.
// The label is a pure function of the text.
func AnalyzeSentiment(text string) string {
	lower := strings.ToLower(text)

	positiveCount := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positiveCount++
		}
	}

	negativeCount := 0
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negativeCount++
		}
	}

	switch {
	case positiveCount > negativeCount:
		return dto.SentimentPositive
	case negativeCount > positiveCount:
		return dto.SentimentNegative
	default:
		return dto.SentimentNeutral
	}
}
