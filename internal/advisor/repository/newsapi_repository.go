package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stock-advisor-api/internal/advisor/config"
	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/pkg/logger"

	"golang.org/x/time/rate"
)

type newsAPIRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewNewsAPIRepository creates a NewsRepository backed by NewsAPI.org.
func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.NewsAPI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &newsAPIRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
	}
}

func (r *newsAPIRepository) Name() string {
	return "newsapi.org"
}

func (r *newsAPIRepository) Search(ctx context.Context, query string, pageSize int) (*dto.NewsSearchResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	searchURL := fmt.Sprintf("%s/v2/everything?q=%s&sortBy=publishedAt&pageSize=%d&language=en&apiKey=%s",
		r.cfg.NewsAPI.BaseURL, url.QueryEscape(query), pageSize, r.cfg.NewsAPI.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to NewsAPI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response dto.NewsAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || response.Status != "ok" {
		r.log.Error("NewsAPI returned an error",
			logger.IntField("status", resp.StatusCode),
			logger.StringField("code", response.Code),
			logger.StringField("message", response.Message),
		)
		return nil, fmt.Errorf("newsapi returned status %d (%s)", resp.StatusCode, response.Code)
	}

	result := &dto.NewsSearchResult{
		TotalResults: response.TotalResults,
		Articles:     make([]dto.ProviderArticle, 0, len(response.Articles)),
	}
	for _, a := range response.Articles {
		result.Articles = append(result.Articles, dto.ProviderArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			SourceName:  a.Source.Name,
			PublishedAt: a.PublishedAt,
			ImageURL:    a.URLToImage,
		})
	}
	return result, nil
}
