package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/internal/advisor/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAIRepo struct {
	result *dto.AIAnalysisResult
	err    error
	calls  int
}

func (r *recordingAIRepo) AnalyzeQuery(_ context.Context, _ string, _, _ []byte) (*dto.AIAnalysisResult, error) {
	r.calls++
	return r.result, r.err
}

func newAnalysisContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/analysis")
	return c, rec
}

func TestAnalyze_MissingQuerySkipsProvider(t *testing.T) {
	e := echo.New()
	repo := &recordingAIRepo{}
	advisorySvc := service.NewAdvisoryService(repo, "openai", testLogger())
	h := NewAnalysisHandler(advisorySvc, testLogger())

	c, rec := newAnalysisContext(e, `{"stockData":{"symbol":"AAPL"}}`)
	require.NoError(t, h.Analyze(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, repo.calls, "no outbound call should be attempted without a query")
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	e := echo.New()
	repo := &recordingAIRepo{err: errors.New("model unavailable")}
	advisorySvc := service.NewAdvisoryService(repo, "openai", testLogger())
	h := NewAnalysisHandler(advisorySvc, testLogger())

	c, rec := newAnalysisContext(e, `{"query":"Should I buy AAPL?"}`)
	require.NoError(t, h.Analyze(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dto.AnalysisSourceFallback, res.Source)
	assert.Equal(t, dto.FallbackModel, res.Model)
	assert.Zero(t, res.TokensUsed)
	assert.NotEmpty(t, res.Analysis)
	assert.Equal(t, dto.RecommendationBuy, res.Structured.Recommendation)
}

func TestAnalyze_ModelResponsePassedThrough(t *testing.T) {
	e := echo.New()
	repo := &recordingAIRepo{
		result: &dto.AIAnalysisResult{
			Analysis:   "A strong buy, I say this with high confidence.",
			Model:      "gpt-3.5-turbo",
			TokensUsed: 512,
		},
	}
	advisorySvc := service.NewAdvisoryService(repo, "openai", testLogger())
	h := NewAnalysisHandler(advisorySvc, testLogger())

	c, rec := newAnalysisContext(e, `{"query":"Should I buy AAPL?","stockData":{"symbol":"AAPL","price":175}}`)
	require.NoError(t, h.Analyze(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "openai", res.Source)
	assert.Equal(t, "gpt-3.5-turbo", res.Model)
	assert.Equal(t, 512, res.TokensUsed)
	assert.Equal(t, dto.RecommendationStrongBuy, res.Structured.Recommendation)
	assert.Equal(t, dto.ConfidenceHigh, res.Structured.Confidence)
}
