package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

// ActivityHandler serves the recent-activity feed.
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityRepo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

// ActivityEntryResponse represents one feed line in the API response.
type ActivityEntryResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	ContentID    string `json:"content_id,omitempty"`
	ContentTitle string `json:"content_title,omitempty"`
	Description  string `json:"description"`
	Timestamp    string `json:"timestamp"`
	Relative     string `json:"relative"`
}

func toActivityEntryResponse(e *domain.ActivityEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		ID:           e.ID,
		Type:         string(e.Type),
		ContentID:    e.ContentID,
		ContentTitle: e.ContentTitle,
		Description:  e.Description,
		Timestamp:    e.Timestamp.Format(TimeFormat),
		Relative:     domain.FormatRelative(e.Timestamp, time.Now()),
	}
}

// ListActivity handles GET /api/v1/activity
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	entries, err := h.activityRepo.ListRecent(c.Request.Context(), activityFeedLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ActivityEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toActivityEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": responses, "count": len(responses)})
}
