package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/validator"
)

// IntakeService onboards creators: it validates the submission, classifies
// it, and stores the finished profile. Classification runs as part of
// creation, so stored profiles always carry all four derived fields.
type IntakeService struct {
	creatorRepo  repository.CreatorRepository
	activityRepo repository.ActivityRepository
	analysis     AnalysisInterface
	validator    *validator.Validator
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(
	creatorRepo repository.CreatorRepository,
	activityRepo repository.ActivityRepository,
	analysis AnalysisInterface,
	v *validator.Validator,
) *IntakeService {
	return &IntakeService{
		creatorRepo:  creatorRepo,
		activityRepo: activityRepo,
		analysis:     analysis,
		validator:    v,
	}
}

// Submit processes an intake submission end to end. Nothing is stored until
// classification has fully succeeded.
func (s *IntakeService) Submit(ctx context.Context, in domain.IntakeSubmission, onProgress ProgressFunc) (*domain.CreatorProfile, error) {
	if err := s.validator.ValidateIntake(&in); err != nil {
		return nil, err
	}

	result, err := s.analysis.ClassifyCreator(ctx, in.Platform, in.FollowerCount, in.Description, in.Goals, onProgress)
	if err != nil {
		return nil, err
	}

	profile := domain.CreatorProfile{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Email:           in.Email,
		Platform:        in.Platform,
		FollowerCount:   in.FollowerCount,
		Description:     in.Description,
		Goals:           in.Goals,
		Niche:           result.Niche,
		PlatformFocus:   result.PlatformFocus,
		Stage:           result.Stage,
		Recommendations: result.Recommendations,
		SubmittedAt:     time.Now(),
	}

	if err := s.creatorRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("store creator profile: %w", err)
	}

	entry := domain.ActivityEntry{
		ID:          uuid.New().String(),
		Type:        domain.ActivityCreatorAdded,
		Description: fmt.Sprintf("Added new creator: %s", profile.Name),
		Timestamp:   time.Now(),
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logger.Warn("failed to record activity",
			slog.String("type", string(entry.Type)),
			slog.String("error", err.Error()))
	}

	logger.Info("creator onboarded",
		slog.String("creator_id", profile.ID),
		slog.String("niche", profile.Niche),
		slog.String("stage", profile.Stage))

	return &profile, nil
}

// Get retrieves a creator profile by id.
func (s *IntakeService) Get(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	return s.creatorRepo.Get(ctx, id)
}

// List retrieves all creator profiles, newest first.
func (s *IntakeService) List(ctx context.Context) ([]domain.CreatorProfile, error) {
	return s.creatorRepo.List(ctx)
}
