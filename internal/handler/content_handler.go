package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/middleware"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

// ContentHandler handles content-related HTTP requests.
type ContentHandler struct {
	contentService service.ContentServiceInterface
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// MetricsResponse represents engagement metrics in the API response.
type MetricsResponse struct {
	Views          int    `json:"views"`
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	EngagementRate string `json:"engagement_rate"`
}

// ContentItemResponse represents a content item in the API response,
// including the derived bottleneck fields the board renders.
type ContentItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Platform    string          `json:"platform"`
	Status      string          `json:"status"`
	AssignedTo  string          `json:"assigned_to"`
	CreatedAt   string          `json:"created_at"`
	LastUpdated string          `json:"last_updated"`
	PublishedAt *string         `json:"published_at,omitempty"`
	Metrics     MetricsResponse `json:"metrics"`
	AISummary   *string         `json:"ai_summary,omitempty"`
	AITitles    []string        `json:"ai_titles,omitempty"`
	DaysInStage int             `json:"days_in_stage"`
	Stuck       bool            `json:"stuck"`
	VeryStuck   bool            `json:"very_stuck"`
}

// toContentItemResponse converts a domain.ContentItem to a ContentItemResponse.
func toContentItemResponse(item *domain.ContentItem, now time.Time) ContentItemResponse {
	response := ContentItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Platform:    string(item.Platform),
		Status:      string(item.Status),
		AssignedTo:  item.AssignedTo,
		CreatedAt:   item.CreatedAt.Format(TimeFormat),
		LastUpdated: item.LastUpdated.Format(TimeFormat),
		Metrics: MetricsResponse{
			Views:          item.Metrics.Views,
			Likes:          item.Metrics.Likes,
			Comments:       item.Metrics.Comments,
			Shares:         item.Metrics.Shares,
			EngagementRate: item.Metrics.EngagementRate(),
		},
		AISummary:   item.AISummary,
		AITitles:    item.AITitles,
		DaysInStage: item.DaysInStage(now),
		Stuck:       item.IsStuck(now),
		VeryStuck:   item.IsVeryStuck(now),
	}
	if item.PublishedAt != nil {
		publishedAt := item.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

// CreateContent handles POST /api/v1/content
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var input domain.NewContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toContentItemResponse(item, time.Now()))
}

// ListContent handles GET /api/v1/content
func (h *ContentHandler) ListContent(c *gin.Context) {
	filter := repository.ContentFilter{
		Search:   c.Query("search"),
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
	}
	if filter.Platform != "" && !domain.IsValidPlatform(filter.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform filter"})
		return
	}
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	items, err := h.contentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	responses := make([]ContentItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toContentItemResponse(&items[i], now))
	}
	c.JSON(http.StatusOK, gin.H{"items": responses, "count": len(responses)})
}

// GetContent handles GET /api/v1/content/:id
func (h *ContentHandler) GetContent(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	item, err := h.contentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toContentItemResponse(item, time.Now()))
}

// TransitionRequest represents a stage transition request.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransitionContent handles PATCH /api/v1/content/:id/status
func (h *ContentHandler) TransitionContent(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !domain.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: " + joinStatuses()})
		return
	}

	item, err := h.contentService.Transition(c.Request.Context(), id, domain.ContentStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toContentItemResponse(item, time.Now()))
}

// AnalyzeContent handles POST /api/v1/content/:id/analyze.
//
// With ?stream=true the handler emits server-sent events: one "progress"
// event per analysis step, then a final "result" event carrying the updated
// item. Without it the call blocks and returns the updated item as JSON.
func (h *ContentHandler) AnalyzeContent(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	requestID := middleware.GetRequestID(c)

	if c.Query("stream") != "true" {
		item, err := h.contentService.Analyze(c.Request.Context(), id, nil)
		if err != nil {
			logger.Error("content analysis failed",
				slog.String("request_id", requestID),
				slog.String("content_id", id),
				slog.String("error", err.Error()))
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toContentItemResponse(item, time.Now()))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	onProgress := func(message string, percent int) {
		c.SSEvent("progress", gin.H{"message": message, "percent": percent})
		c.Writer.Flush()
	}

	item, err := h.contentService.Analyze(c.Request.Context(), id, onProgress)
	if err != nil {
		logger.Error("content analysis failed",
			slog.String("request_id", requestID),
			slog.String("content_id", id),
			slog.String("error", err.Error()))
		c.SSEvent("error", gin.H{"error": "analysis failed"})
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", toContentItemResponse(item, time.Now()))
	c.Writer.Flush()
}

func joinStatuses() string {
	names := make([]string, len(domain.AllStatuses))
	for i, s := range domain.AllStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
