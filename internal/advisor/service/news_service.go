package service

import (
	"context"
	"strings"
	"time"

	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/internal/advisor/repository"
	"stock-advisor-api/pkg/logger"
	"stock-advisor-api/pkg/utils"
)

// maxArticles caps how many articles a news response carries.
const maxArticles = 5

// NewsService returns recent, sentiment-annotated news for a ticker
// symbol. It never fails: provider errors and empty result sets are
// replaced by canned articles.
type NewsService interface {
	GetNews(ctx context.Context, symbol string) *dto.NewsResponse
}

type newsService struct {
	newsRepo repository.NewsRepository
	log      *logger.Logger
	pageSize int

	now func() time.Time
}

// NewNewsService creates a new NewsService. pageSize is how many articles
// to request from the provider before filtering.
func NewNewsService(newsRepo repository.NewsRepository, pageSize int, log *logger.Logger) NewsService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &newsService{
		newsRepo: newsRepo,
		log:      log,
		pageSize: pageSize,
		now:      time.Now,
	}
}

func (s *newsService) GetNews(ctx context.Context, symbol string) *dto.NewsResponse {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	searchTerm := symbol
	if term, ok := companySearchTerms[symbol]; ok {
		searchTerm = term
	}

	result, err := s.newsRepo.Search(ctx, searchTerm, s.pageSize)
	if err != nil {
		s.log.Warn("News search failed, serving simulated news",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return s.simulateNews(symbol)
	}

	now := s.now()
	articles := make([]dto.NewsArticle, 0, maxArticles)
	for _, a := range result.Articles {
		if a.Title == "" || a.Description == "" {
			continue
		}
		if len(articles) >= maxArticles {
			break
		}
		articles = append(articles, dto.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.SourceName,
			PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
			Time:        utils.RelativeTime(now, a.PublishedAt),
			Sentiment:   AnalyzeSentiment(a.Title + " " + a.Description),
			URLToImage:  a.ImageURL,
		})
	}

	if len(articles) == 0 {
		s.log.Debug("No usable articles from provider, serving simulated news",
			logger.StringField("symbol", symbol),
		)
		return s.simulateNews(symbol)
	}

	return &dto.NewsResponse{
		Symbol:       symbol,
		Articles:     articles,
		TotalResults: result.TotalResults,
		Source:       s.newsRepo.Name(),
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}
}

// simulateNews serves the canned article set for the symbol, staggering
// publish times a few hours apart so relative ages read naturally.
func (s *newsService) simulateNews(symbol string) *dto.NewsResponse {
	canned, ok := cannedNews[symbol]
	if !ok {
		canned = genericCannedNews
	}

	now := s.now()
	articles := make([]dto.NewsArticle, 0, len(canned))
	for i, c := range canned {
		publishedAt := now.Add(-time.Duration(i+1) * 3 * time.Hour)
		articles = append(articles, dto.NewsArticle{
			Title:       c.Title,
			Description: c.Description,
			URL:         "#",
			Source:      c.Source,
			PublishedAt: publishedAt.UTC().Format(time.RFC3339),
			Time:        utils.RelativeTime(now, publishedAt),
			Sentiment:   c.Sentiment,
		})
	}

	return &dto.NewsResponse{
		Symbol:       symbol,
		Articles:     articles,
		TotalResults: len(articles),
		Source:       dto.NewsSourceSimulated,
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}
}
