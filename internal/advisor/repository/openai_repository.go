package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stock-advisor-api/internal/advisor/config"
	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/pkg/logger"

	"golang.org/x/time/rate"
)

type openaiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates an AIRepository backed by the OpenAI chat
// completion API.
func NewOpenAIRepository(cfg *config.Config, logger *logger.Logger) AIRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &openaiAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         logger,
		requestLimiter: requestLimiter,
	}
}

func (r *openaiAIRepository) AnalyzeQuery(ctx context.Context, query string, stockData, newsData []byte) (*dto.AIAnalysisResult, error) {
	prompt := BuildAnalysisPrompt(query, stockData, newsData)

	resp, err := r.sendRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai response contains no choices")
	}

	return &dto.AIAnalysisResult{
		Analysis:   resp.Choices[0].Message.Content,
		Model:      r.cfg.OpenAI.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func (r *openaiAIRepository) sendRequest(ctx context.Context, prompt string) (*dto.OpenAIRes, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.Error("failed to wait for request limit", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.OpenAIReq{
		Model: r.cfg.OpenAI.Model,
		Messages: []dto.Message{
			{
				Role:    "system",
				Content: analystSystemPrompt,
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens:   r.cfg.OpenAI.MaxTokens,
		Temperature: r.cfg.OpenAI.Temperature,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.Debug("Sending request to OpenAI API",
		logger.StringField("url", r.cfg.OpenAI.BaseURL),
		logger.StringField("model", r.cfg.OpenAI.Model),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.OpenAI.APIKey))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response dto.OpenAIRes
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errMsg := ""
		if response.Error != nil {
			errMsg = response.Error.Message
		}
		r.logger.Error("OpenAI API returned non-200 status",
			logger.IntField("status", resp.StatusCode),
			logger.StringField("message", errMsg),
		)
		return nil, fmt.Errorf("openai API returned status %d", resp.StatusCode)
	}

	return &response, nil
}
