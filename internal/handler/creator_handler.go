package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/middleware"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

// CreatorHandler handles creator intake HTTP requests.
type CreatorHandler struct {
	intakeService service.IntakeServiceInterface
}

// NewCreatorHandler creates a new CreatorHandler.
func NewCreatorHandler(intakeService service.IntakeServiceInterface) *CreatorHandler {
	return &CreatorHandler{intakeService: intakeService}
}

// CreatorProfileResponse represents a classified creator in the API response.
type CreatorProfileResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Platform        string   `json:"platform"`
	FollowerCount   string   `json:"follower_count"`
	Description     string   `json:"description"`
	Goals           []string `json:"goals"`
	Niche           string   `json:"niche"`
	PlatformFocus   string   `json:"platform_focus"`
	Stage           string   `json:"stage"`
	Recommendations []string `json:"recommendations"`
	SubmittedAt     string   `json:"submitted_at"`
}

func toCreatorProfileResponse(p *domain.CreatorProfile) CreatorProfileResponse {
	return CreatorProfileResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Platform:        p.Platform,
		FollowerCount:   p.FollowerCount,
		Description:     p.Description,
		Goals:           p.Goals,
		Niche:           p.Niche,
		PlatformFocus:   p.PlatformFocus,
		Stage:           p.Stage,
		Recommendations: p.Recommendations,
		SubmittedAt:     p.SubmittedAt.Format(TimeFormat),
	}
}

// SubmitIntake handles POST /api/v1/creators.
//
// With ?stream=true the handler emits server-sent events for each
// classification step, then a final "result" event carrying the stored
// profile. Without it the call blocks and returns the profile as JSON.
func (h *CreatorHandler) SubmitIntake(c *gin.Context) {
	var submission domain.IntakeSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	requestID := middleware.GetRequestID(c)

	if c.Query("stream") != "true" {
		profile, err := h.intakeService.Submit(c.Request.Context(), submission, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCreatorProfileResponse(profile))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	onProgress := func(message string, percent int) {
		c.SSEvent("progress", gin.H{"message": message, "percent": percent})
		c.Writer.Flush()
	}

	profile, err := h.intakeService.Submit(c.Request.Context(), submission, onProgress)
	if err != nil {
		logger.Error("creator intake failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		c.SSEvent("error", gin.H{"error": "intake failed"})
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", toCreatorProfileResponse(profile))
	c.Writer.Flush()
}

// ListCreators handles GET /api/v1/creators
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	profiles, err := h.intakeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CreatorProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, toCreatorProfileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": responses, "count": len(responses)})
}

// GetCreator handles GET /api/v1/creators/:id
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	profile, err := h.intakeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCreatorProfileResponse(profile))
}

// IntakeOptions handles GET /api/v1/creators/options. The intake form pulls
// its platform and goal choices from here rather than hardcoding them.
func (h *CreatorHandler) IntakeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"platforms": domain.IntakePlatformOptions,
		"goals":     domain.GoalOptions,
	})
}
