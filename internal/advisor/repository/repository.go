package repository

import (
	"context"

	"stock-advisor-api/internal/advisor/dto"
)

// MarketDataRepository fetches raw market data for a ticker symbol.
type MarketDataRepository interface {
	GetDailyBar(ctx context.Context, symbol, date string) (*dto.PolygonAggsResponse, error)
	GetLastTrade(ctx context.Context, symbol string) (*dto.PolygonLastTradeResponse, error)
	GetTickerDetails(ctx context.Context, symbol string) (*dto.PolygonTickerDetailsResponse, error)
}

// NewsRepository searches a news provider for recent articles.
type NewsRepository interface {
	// Name identifies the provider in the response's source field.
	Name() string
	Search(ctx context.Context, query string, pageSize int) (*dto.NewsSearchResult, error)
}

// AIRepository generates a narrative analysis for a user query plus
// optional stock and news payloads.
type AIRepository interface {
	AnalyzeQuery(ctx context.Context, query string, stockData, newsData []byte) (*dto.AIAnalysisResult, error)
}
