package service

import (
	"testing"

	"stock-advisor-api/internal/advisor/dto"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "positive keywords dominate",
			text: "NVIDIA unveils breakthrough AI chips, stock may surge",
			want: dto.SentimentPositive,
		},
		{
			name: "negative keywords dominate",
			text: "Company faces lawsuit amid investigation, shares crash",
			want: dto.SentimentNegative,
		},
		{
			name: "no keywords",
			text: "Markets closed for holiday",
			want: dto.SentimentNeutral,
		},
		{
			name: "tie is neutral",
			text: "Earnings beat estimates while debt concerns linger",
			want: dto.SentimentNeutral,
		},
		{
			name: "case insensitive",
			text: "RECORD GROWTH AND STRONG GAINS",
			want: dto.SentimentPositive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeSentiment(tt.text))
		})
	}
}

func TestAnalyzeSentiment_Deterministic(t *testing.T) {
	text := "Analysts upgrade the stock after record earnings"
	first := AnalyzeSentiment(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeSentiment(text))
	}
}
