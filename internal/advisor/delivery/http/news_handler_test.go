package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/internal/advisor/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unreachableNewsRepo struct{}

func (unreachableNewsRepo) Name() string { return "newsapi.org" }

func (unreachableNewsRepo) Search(context.Context, string, int) (*dto.NewsSearchResult, error) {
	return nil, errors.New("connection refused")
}

func TestGetNews_SimulatedWhenProviderUnreachable(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news/TSLA", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/news/:symbol")
	c.SetParamNames("symbol")
	c.SetParamValues("TSLA")

	newsSvc := service.NewNewsService(unreachableNewsRepo{}, 10, testLogger())
	h := NewNewsHandler(newsSvc, testLogger())
	require.NoError(t, h.GetNews(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res dto.NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "TSLA", res.Symbol)
	assert.Equal(t, dto.NewsSourceSimulated, res.Source)
	require.NotEmpty(t, res.Articles)
	assert.LessOrEqual(t, len(res.Articles), 5)
	for _, a := range res.Articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Description)
	}
}

func TestGetNews_MissingSymbol(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/news")

	newsSvc := service.NewNewsService(unreachableNewsRepo{}, 10, testLogger())
	h := NewNewsHandler(newsSvc, testLogger())
	require.NoError(t, h.GetNews(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
