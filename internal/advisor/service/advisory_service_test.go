package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stock-advisor-api/internal/advisor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIRepo struct {
	result *dto.AIAnalysisResult
	err    error
	calls  int
}

func (f *fakeAIRepo) AnalyzeQuery(_ context.Context, _ string, _, _ []byte) (*dto.AIAnalysisResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestAdvisoryService(repo *fakeAIRepo) *advisoryService {
	return &advisoryService{
		aiRepo: repo,
		source: "openai",
		log:    testLogger(),
		now:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestStructureAnalysis(t *testing.T) {
	tests := []struct {
		name           string
		narrative      string
		recommendation string
		confidence     string
		color          string
		icon           string
	}{
		{
			name:           "strong buy with high confidence",
			narrative:      "I strongly recommend you buy this stock with high confidence",
			recommendation: dto.RecommendationStrongBuy,
			confidence:     dto.ConfidenceHigh,
			color:          "#10b981",
			icon:           "✅",
		},
		{
			name:           "sell with low confidence",
			narrative:      "You should sell due to high risk, low confidence",
			recommendation: dto.RecommendationSell,
			confidence:     dto.ConfidenceLow,
			color:          "#ef4444",
			icon:           "❌",
		},
		{
			name:           "neither buy nor sell",
			narrative:      "The outlook is unclear, wait for more data",
			recommendation: dto.RecommendationHold,
			confidence:     dto.ConfidenceMedium,
			color:          "#f59e0b",
			icon:           "⏳",
		},
		{
			name:           "negated buy without sell falls to hold",
			narrative:      "I would say don't buy at these levels",
			recommendation: dto.RecommendationHold,
			confidence:     dto.ConfidenceMedium,
			color:          "#f59e0b",
			icon:           "⏳",
		},
		{
			name:           "strong sell",
			narrative:      "This is a strong signal to sell immediately",
			recommendation: dto.RecommendationStrongSell,
			confidence:     dto.ConfidenceMedium,
			color:          "#ef4444",
			icon:           "❌",
		},
		{
			name:           "uncertain narrative lowers confidence",
			narrative:      "Buying could work but the outlook is uncertain",
			recommendation: dto.RecommendationBuy,
			confidence:     dto.ConfidenceLow,
			color:          "#10b981",
			icon:           "✅",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StructureAnalysis(tt.narrative, "query")
			assert.Equal(t, tt.recommendation, got.Recommendation)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.color, got.Color)
			assert.Equal(t, tt.icon, got.Icon)
			assert.Equal(t, "query", got.Query)
		})
	}
}

func TestStructureAnalysis_Idempotent(t *testing.T) {
	narrative := "I strongly recommend you buy this stock with high confidence"
	first := StructureAnalysis(narrative, "should I buy?")
	second := StructureAnalysis(narrative, "should I buy?")
	assert.Equal(t, first, second)
}

func TestAnalyze_UsesAIResult(t *testing.T) {
	repo := &fakeAIRepo{
		result: &dto.AIAnalysisResult{
			Analysis:   "Given the momentum, I recommend a buy with high confidence.",
			Model:      "gpt-3.5-turbo",
			TokensUsed: 321,
		},
	}
	svc := newTestAdvisoryService(repo)

	res := svc.Analyze(context.Background(), &dto.AnalysisRequest{Query: "Should I buy AAPL?"})

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, "openai", res.Source)
	assert.Equal(t, "gpt-3.5-turbo", res.Model)
	assert.Equal(t, 321, res.TokensUsed)
	assert.Equal(t, dto.RecommendationBuy, res.Structured.Recommendation)
	assert.Equal(t, dto.ConfidenceHigh, res.Structured.Confidence)
	assert.Equal(t, "Should I buy AAPL?", res.Structured.Query)
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	repo := &fakeAIRepo{err: errors.New("model unavailable")}
	svc := newTestAdvisoryService(repo)

	stockData, _ := json.Marshal(map[string]interface{}{
		"symbol":        "AAPL",
		"price":         175.5,
		"changePercent": -1.2,
	})

	res := svc.Analyze(context.Background(), &dto.AnalysisRequest{
		Query:     "Should I sell my AAPL position?",
		StockData: stockData,
	})

	assert.Equal(t, dto.AnalysisSourceFallback, res.Source)
	assert.Equal(t, dto.FallbackModel, res.Model)
	assert.Zero(t, res.TokensUsed)
	assert.Contains(t, res.Analysis, "AAPL is currently trading at $175.50, down 1.20% today.")
	assert.Equal(t, dto.RecommendationSell, res.Structured.Recommendation)
	assert.Equal(t, dto.ConfidenceMedium, res.Structured.Confidence)
}

func TestAnalyze_FallbackDirectionFollowsQuery(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		recommendation string
	}{
		{"buy question", "Is now a good time to invest in MSFT?", dto.RecommendationBuy},
		{"sell question", "Should I exit my TSLA position?", dto.RecommendationSell},
		{"neutral question", "What is happening with NVDA lately?", dto.RecommendationHold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAdvisoryService(&fakeAIRepo{err: errors.New("boom")})
			res := svc.Analyze(context.Background(), &dto.AnalysisRequest{Query: tt.query})
			assert.Equal(t, tt.recommendation, res.Structured.Recommendation)
		})
	}
}

func TestAnalyze_FallbackMentionsNewsSentiment(t *testing.T) {
	newsData, _ := json.Marshal(map[string]interface{}{
		"articles": []map[string]string{
			{"sentiment": "positive"},
			{"sentiment": "positive"},
			{"sentiment": "negative"},
		},
	})

	svc := newTestAdvisoryService(&fakeAIRepo{err: errors.New("boom")})
	res := svc.Analyze(context.Background(), &dto.AnalysisRequest{
		Query:    "What do you think about NVDA?",
		NewsData: newsData,
	})

	assert.Contains(t, res.Analysis, "mostly positive")
	assert.Contains(t, res.Analysis, "2 positive, 1 negative of 3 articles")
}

func TestAnalyze_FallbackIsDeterministic(t *testing.T) {
	svc := newTestAdvisoryService(&fakeAIRepo{err: errors.New("boom")})
	req := &dto.AnalysisRequest{Query: "Should I buy GOOGL?"}

	first := svc.Analyze(context.Background(), req)
	second := svc.Analyze(context.Background(), req)

	require.Equal(t, first.Analysis, second.Analysis)
	require.Equal(t, first.Structured, second.Structured)
}
