package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-advisor-api/internal/advisor/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

// newTestServer wires routes and middleware the same way cmd/server does.
func newTestServer() *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	api := e.Group("/api")
	NewStockHandler(service.NewQuoteService(unreachableMarketRepo{}, testLogger()), testLogger()).RegisterRoutes(api)
	NewNewsHandler(service.NewNewsService(unreachableNewsRepo{}, 10, testLogger()), testLogger()).RegisterRoutes(api)
	NewAnalysisHandler(service.NewAdvisoryService(&recordingAIRepo{}, "openai", testLogger()), testLogger()).RegisterRoutes(api)
	return e
}

func TestPreflightRequestsSucceedWithOpenCORS(t *testing.T) {
	e := newTestServer()

	for _, path := range []string{"/api/stocks/AAPL", "/api/news/AAPL", "/api/analysis"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set(echo.HeaderOrigin, "https://example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin), path)
		assert.Empty(t, rec.Body.String(), path)
	}
}

func TestUnsupportedMethodRejected(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/stocks/AAPL", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/analysis", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
