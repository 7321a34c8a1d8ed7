package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

// TeamHandler serves the team roster with derived workloads.
type TeamHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(analyticsService service.AnalyticsServiceInterface) *TeamHandler {
	return &TeamHandler{analyticsService: analyticsService}
}

// ListTeam handles GET /api/v1/team
func (h *TeamHandler) ListTeam(c *gin.Context) {
	workloads, err := h.analyticsService.TeamWorkloads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": workloads, "count": len(workloads)})
}
