package dto

import "time"

// Sentiment labels assigned to news articles.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

const NewsSourceSimulated = "simulation"

// NewsArticle is one normalized, sentiment-annotated article.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Time        string `json:"time"`
	Sentiment   string `json:"sentiment"`
	URLToImage  string `json:"urlToImage,omitempty"`
}

// NewsResponse is the payload returned by the news endpoint.
type NewsResponse struct {
	Symbol       string        `json:"symbol"`
	Articles     []NewsArticle `json:"articles"`
	TotalResults int           `json:"totalResults"`
	Source       string        `json:"source"`
	LastUpdated  string        `json:"lastUpdated"`
}

// ProviderArticle is a raw article as returned by a news provider, before
// filtering and annotation.
type ProviderArticle struct {
	Title       string
	Description string
	URL         string
	SourceName  string
	PublishedAt time.Time
	ImageURL    string
}

// NewsSearchResult is the provider-agnostic result of a news search.
type NewsSearchResult struct {
	Articles     []ProviderArticle
	TotalResults int
}
