package http

import (
	"net/http"

	"stock-advisor-api/internal/advisor/service"
	"stock-advisor-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for stock news.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/news", h.GetNews)
	g.GET("/news/:symbol", h.GetNews)
}

// GetNews godoc
// @Summary Get recent news for a symbol
// @Description Get up to 5 sentiment-annotated articles, simulated when the provider is unavailable
// @Tags news
// @Produce  json
// @Param   symbol  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.NewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /news/{symbol} [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	symbol := c.Param("symbol")
	if symbol == "" {
		symbol = c.QueryParam("symbol")
	}
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Symbol parameter required"})
	}

	news := h.newsService.GetNews(c.Request().Context(), symbol)
	return c.JSON(http.StatusOK, news)
}
