package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

// AnalyticsHandler serves the derived read views.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard handles GET /api/v1/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	summary, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Report handles GET /api/v1/analytics
func (h *AnalyticsHandler) Report(c *gin.Context) {
	report, err := h.analyticsService.Report(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
