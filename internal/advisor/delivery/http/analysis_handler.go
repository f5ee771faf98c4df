package http

import (
	"net/http"

	"stock-advisor-api/internal/advisor/dto"
	"stock-advisor-api/internal/advisor/service"
	"stock-advisor-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for AI-backed analysis.
type AnalysisHandler struct {
	advisoryService service.AdvisoryService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(advisoryService service.AdvisoryService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{advisoryService: advisoryService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analysis", h.Analyze)
}

// Analyze godoc
// @Summary Analyze a stock question
// @Description Generate a narrative analysis and structured recommendation; degrades to a rule-based answer when the model is unavailable
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalysisRequest   true    "Query with optional stock and news payloads"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /analysis [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Query parameter required"})
	}

	result := h.advisoryService.Analyze(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}
