package http

import (
	"net/http"

	"stock-advisor-api/internal/advisor/service"
	"stock-advisor-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for stock quotes.
type StockHandler struct {
	quoteService service.QuoteService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(quoteService service.QuoteService, logger *logger.Logger) *StockHandler {
	return &StockHandler{quoteService: quoteService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stocks", h.GetQuote)
	g.GET("/stocks/:symbol", h.GetQuote)
}

// GetQuote godoc
// @Summary Get a stock quote
// @Description Get a normalized quote for a ticker symbol, simulated when live data is unavailable
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /stocks/{symbol} [get]
func (h *StockHandler) GetQuote(c echo.Context) error {
	symbol := c.Param("symbol")
	if symbol == "" {
		symbol = c.QueryParam("symbol")
	}
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Symbol parameter required"})
	}

	quote := h.quoteService.GetQuote(c.Request().Context(), symbol)
	return c.JSON(http.StatusOK, quote)
}
