package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/internal/advisor/repository"
	"stock-advisor-api/pkg/logger"
)

// AdvisoryService turns a free-text query plus optional quote/news
// payloads into a narrative analysis with a structured recommendation.
// Provider failures are absorbed: the caller always gets an answer, with
// the rule-based path tagged via the response's source field.
type AdvisoryService interface {
	Analyze(ctx context.Context, req *dto.AnalysisRequest) *dto.AnalysisResponse
}

type advisoryService struct {
	aiRepo repository.AIRepository
	source string
	log    *logger.Logger

	now func() time.Time
}

// NewAdvisoryService creates a new AdvisoryService. source names the AI
// provider in successful responses (e.g. "openai", "gemini").
func NewAdvisoryService(aiRepo repository.AIRepository, source string, log *logger.Logger) AdvisoryService {
	return &advisoryService{
		aiRepo: aiRepo,
		source: source,
		log:    log,
		now:    time.Now,
	}
}

func (s *advisoryService) Analyze(ctx context.Context, req *dto.AnalysisRequest) *dto.AnalysisResponse {
	result, err := s.aiRepo.AnalyzeQuery(ctx, req.Query, req.StockData, req.NewsData)
	if err != nil {
		s.log.Warn("AI analysis failed, serving rule-based analysis",
			logger.StringField("provider", s.source),
			logger.ErrorField(err),
		)
		narrative := s.fallbackNarrative(req)
		return &dto.AnalysisResponse{
			Analysis:   narrative,
			Structured: StructureAnalysis(narrative, req.Query),
			Source:     dto.AnalysisSourceFallback,
			Model:      dto.FallbackModel,
			Timestamp:  s.now().UTC().Format(time.RFC3339),
			TokensUsed: 0,
		}
	}

	return &dto.AnalysisResponse{
		Analysis:   result.Analysis,
		Structured: StructureAnalysis(result.Analysis, req.Query),
		Source:     s.source,
		Model:      result.Model,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		TokensUsed: result.TokensUsed,
	}
}

// fallbackStockData is the loose shape the rule-based narrative pulls out
// of the opaque stock payload. Anything that doesn't parse is ignored.
type fallbackStockData struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

type fallbackNewsData struct {
	Articles []struct {
		Sentiment string `json:"sentiment"`
	} `json:"articles"`
}

// fallbackNarrative builds a deterministic, templated analysis from
// whatever data the caller supplied. Its wording is chosen so that the
// structuring scan extracts a recommendation consistent with the query's
// direction.
func (s *advisoryService) fallbackNarrative(req *dto.AnalysisRequest) string {
	var b strings.Builder
	b.WriteString("Based on available market data analysis:\n\n")

	var stock fallbackStockData
	if len(req.StockData) > 0 {
		if err := json.Unmarshal(req.StockData, &stock); err == nil && stock.Symbol != "" && stock.Price > 0 {
			direction := "up"
			if stock.ChangePercent < 0 {
				direction = "down"
			}
			b.WriteString(fmt.Sprintf("%s is currently trading at $%.2f, %s %.2f%% today. ",
				stock.Symbol, stock.Price, direction, math.Abs(stock.ChangePercent)))
		}
	}

	var news fallbackNewsData
	if len(req.NewsData) > 0 {
		if err := json.Unmarshal(req.NewsData, &news); err == nil && len(news.Articles) > 0 {
			positive, negative := 0, 0
			for _, a := range news.Articles {
				switch a.Sentiment {
				case dto.SentimentPositive:
					positive++
				case dto.SentimentNegative:
					negative++
				}
			}
			tone := "mixed"
			if positive > negative {
				tone = "mostly positive"
			} else if negative > positive {
				tone = "mostly negative"
			}
			b.WriteString(fmt.Sprintf("Recent news coverage is %s (%d positive, %d negative of %d articles). ",
				tone, positive, negative, len(news.Articles)))
		}
	}

	lowerQuery := strings.ToLower(req.Query)
	isBuyQuestion := strings.Contains(lowerQuery, "buy") || strings.Contains(lowerQuery, "invest")
	isSellQuestion := strings.Contains(lowerQuery, "sell") || strings.Contains(lowerQuery, "exit")

	switch {
	case isBuyQuestion:
		b.WriteString("\n\nThe current momentum and sentiment suggest this could be a reasonable entry point, so a gradual buy approach may be appropriate. Consider dollar-cost averaging to manage timing risk.")
	case isSellQuestion:
		b.WriteString("\n\nIf you are looking to reduce exposure, selling a partial position while monitoring upcoming earnings may balance risk against remaining upside.")
	default:
		b.WriteString("\n\nWithout a clear directional question, maintaining current positions and watching for clearer signals is the prudent course.")
	}

	b.WriteString("\n\nRisk assessment: markets remain volatile and past performance does not guarantee future results. Confidence level: Medium.")

	return b.String()
}
