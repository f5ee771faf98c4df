package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-advisor-api/internal/advisor/config"
	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository is an AIRepository implementation backed by the
// Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) AnalyzeQuery(ctx context.Context, query string, stockData, newsData []byte) (*dto.AIAnalysisResult, error) {
	prompt := analystSystemPrompt + "\n\n" + BuildAnalysisPrompt(query, stockData, newsData)

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini response contains no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	analysis := sb.String()
	if analysis == "" {
		return nil, fmt.Errorf("gemini response contains no text")
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	r.logger.Debug("Gemini analysis generated",
		logger.StringField("model", r.cfg.Gemini.Model),
		logger.IntField("tokens_used", tokensUsed),
	)

	return &dto.AIAnalysisResult{
		Analysis:   analysis,
		Model:      r.cfg.Gemini.Model,
		TokensUsed: tokensUsed,
	}, nil
}
