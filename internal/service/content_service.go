package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/metrics"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/validator"
)

// ContentService owns content item lifecycle: creation, stage transitions,
// and attaching analysis results. Every mutation is a whole-entity replace
// through the repository.
type ContentService struct {
	contentRepo  repository.ContentRepository
	activityRepo repository.ActivityRepository
	analysis     AnalysisInterface
	validator    *validator.Validator
}

// NewContentService creates a new ContentService.
func NewContentService(
	contentRepo repository.ContentRepository,
	activityRepo repository.ActivityRepository,
	analysis AnalysisInterface,
	v *validator.Validator,
) *ContentService {
	return &ContentService{
		contentRepo:  contentRepo,
		activityRepo: activityRepo,
		analysis:     analysis,
		validator:    v,
	}
}

// Create validates the input and stores a new item in Ideation with zero
// metrics and no analysis attached.
func (s *ContentService) Create(ctx context.Context, input domain.NewContentInput) (*domain.ContentItem, error) {
	if err := s.validator.ValidateNewContent(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.ContentItem{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		Platform:       domain.Platform(input.Platform),
		Status:         domain.StatusIdeation,
		AssignedTo:     input.AssignedTo,
		CreatedAt:      now,
		LastUpdated:    now,
		StageEnteredAt: now,
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues(input.Platform).Inc()
	s.recordActivity(ctx, domain.ActivityEntry{
		Type:         domain.ActivityContentAdded,
		ContentID:    item.ID,
		ContentTitle: item.Title,
		Description:  fmt.Sprintf("Added new content: %s", item.Title),
	})

	return &item, nil
}

// Get retrieves a content item by id.
func (s *ContentService) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	return s.contentRepo.Get(ctx, id)
}

// List retrieves content items matching the filter, newest first.
func (s *ContentService) List(ctx context.Context, filter repository.ContentFilter) ([]domain.ContentItem, error) {
	return s.contentRepo.List(ctx, filter)
}

// Transition moves an item to a new pipeline stage. Moves in any direction
// are allowed; the stage clock resets either way. Moving to the current
// stage returns the item unchanged.
func (s *ContentService) Transition(ctx context.Context, id string, newStatus domain.ContentStatus) (*domain.ContentItem, error) {
	item, err := s.contentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.Status == newStatus {
		return item, nil
	}

	from := item.Status
	updated := item.Transition(newStatus, time.Now())
	if err := s.contentRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("transition content: %w", err)
	}

	metrics.StageTransitionsTotal.WithLabelValues(string(from), string(newStatus)).Inc()
	s.recordActivity(ctx, domain.ActivityEntry{
		Type:         domain.ActivityStatusChange,
		ContentID:    updated.ID,
		ContentTitle: updated.Title,
		Description:  fmt.Sprintf("Moved to %s", newStatus),
	})
	logger.Info("content transitioned",
		slog.String("content_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(newStatus)))

	return &updated, nil
}

// Analyze runs content analysis for an item and attaches the result. The
// item is only updated after the full analysis succeeds; a failed or
// cancelled run leaves it untouched. Re-analysis overwrites the previous
// result entirely.
func (s *ContentService) Analyze(ctx context.Context, id string, onProgress ProgressFunc) (*domain.ContentItem, error) {
	item, err := s.contentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.analysis.AnalyzeContent(ctx, item.Title, item.Description, item.Platform, onProgress)
	if err != nil {
		return nil, err
	}

	updated := item.AttachAnalysis(*result, time.Now())
	if err := s.contentRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("attach analysis: %w", err)
	}

	s.recordActivity(ctx, domain.ActivityEntry{
		Type:         domain.ActivityAIAnalysis,
		ContentID:    updated.ID,
		ContentTitle: updated.Title,
		Description:  "Ran AI analysis",
	})

	return &updated, nil
}

// recordActivity appends a feed entry. Feed failures are logged, not
// propagated; the primary mutation has already succeeded.
func (s *ContentService) recordActivity(ctx context.Context, entry domain.ActivityEntry) {
	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now()
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logger.Warn("failed to record activity",
			slog.String("type", string(entry.Type)),
			slog.String("error", err.Error()))
	}
}
