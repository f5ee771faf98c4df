package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stock-advisor-api/internal/advisor/config"
	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/pkg/logger"

	"github.com/mmcdole/gofeed"
)

type rssNewsRepository struct {
	cfg    *config.Config
	log    *logger.Logger
	parser *gofeed.Parser
}

// NewRSSNewsRepository creates a NewsRepository backed by the Google News
// RSS feed. It needs no API key, which makes it a useful keyless
// alternative to NewsAPI.
func NewRSSNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &rssNewsRepository{
		cfg:    cfg,
		log:    log,
		parser: gofeed.NewParser(),
	}
}

func (r *rssNewsRepository) Name() string {
	return "news.google.com"
}

func (r *rssNewsRepository) Search(ctx context.Context, query string, pageSize int) (*dto.NewsSearchResult, error) {
	feedURL := fmt.Sprintf("%s/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		r.cfg.News.RSSURL, url.QueryEscape(query))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	result := &dto.NewsSearchResult{
		TotalResults: len(feed.Items),
		Articles:     make([]dto.ProviderArticle, 0, pageSize),
	}
	for _, item := range feed.Items {
		if len(result.Articles) >= pageSize {
			break
		}
		publishedAt := time.Time{}
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}
		sourceName := r.Name()
		if feed.Title != "" {
			sourceName = feed.Title
		}
		result.Articles = append(result.Articles, dto.ProviderArticle{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			SourceName:  sourceName,
			PublishedAt: publishedAt,
		})
	}

	r.log.Debug("Fetched RSS news feed",
		logger.StringField("query", query),
		logger.IntField("items", len(feed.Items)),
	)

	return result, nil
}
