package repository

import (
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

type polygonRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewPolygonRepository creates a MarketDataRepository backed by Polygon.io.
func NewPolygonRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Polygon.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &polygonRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
	}
}

func (r *polygonRepository) GetDailyBar(ctx context.Context, symbol, date string) (*dto.PolygonAggsResponse, error) {
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&apikey=%s",
		r.cfg.Polygon.BaseURL, symbol, date, date, r.cfg.Polygon.APIKey)

	var response dto.PolygonAggsResponse
	if err := r.getJSON(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch daily bar: %w", err)
	}
	return &response, nil
}

func (r *polygonRepository) GetLastTrade(ctx context.Context, symbol string) (*dto.PolygonLastTradeResponse, error) {
	url := fmt.Sprintf("%s/v2/last/trade/%s?apikey=%s",
		r.cfg.Polygon.BaseURL, symbol, r.cfg.Polygon.APIKey)

	var response dto.PolygonLastTradeResponse
	if err := r.getJSON(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch last trade: %w", err)
	}
	return &response, nil
}

func (r *polygonRepository) GetTickerDetails(ctx context.Context, symbol string) (*dto.PolygonTickerDetailsResponse, error) {
	url := fmt.Sprintf("%s/v3/reference/tickers/%s?apikey=%s",
		r.cfg.Polygon.BaseURL, symbol, r.cfg.Polygon.APIKey)

	var response dto.PolygonTickerDetailsResponse
	if err := r.getJSON(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch ticker details: %w", err)
	}
	return &response, nil
}

func (r *polygonRepository) getJSON(ctx context.Context, url string, out interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for request limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create new http request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Polygon API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.Error("Polygon API returned non-200 status",
			logger.IntField("status", resp.StatusCode),
			logger.StringField("body", string(body)),
		)
		return fmt.Errorf("polygon API returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
