package dto

import "encoding/json"

// Analysis sources reported to the caller.
const (
	AnalysisSourceFallback = "fallback"
	FallbackModel          = "rule-based"
)

// Recommendation values extracted from an analysis narrative.
const (
	RecommendationStrongBuy  = "STRONG BUY"
	RecommendationBuy        = "BUY"
	RecommendationHold       = "HOLD"
	RecommendationSell       = "SELL"
	RecommendationStrongSell = "STRONG SELL"
)

// Confidence levels extracted from an analysis narrative.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// AnalysisRequest is the body accepted by the analysis endpoint. Stock and
// news payloads are opaque: they are forwarded into the model prompt
// verbatim and only loosely parsed by the rule-based fallback.
type AnalysisRequest struct {
	Query     string          `json:"query"`
	StockData json.RawMessage `json:"stockData,omitempty"`
	NewsData  json.RawMessage `json:"newsData,omitempty"`
}

// StructuredAnalysis is the machine-readable summary derived from a
// narrative. It is a pure function of the narrative text and query.
type StructuredAnalysis struct {
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	Query          string `json:"query"`
}

// AnalysisResponse is the payload returned by the analysis endpoint.
type AnalysisResponse struct {
	Analysis   string             `json:"analysis"`
	Structured StructuredAnalysis `json:"structured"`
	Source     string             `json:"source"`
	Model      string             `json:"model"`
	Timestamp  string             `json:"timestamp"`
	TokensUsed int                `json:"tokensUsed"`
}

// AIAnalysisResult is what an AI provider returns for one analysis request.
type AIAnalysisResult struct {
	Analysis   string
	Model      string
	TokensUsed int
}
