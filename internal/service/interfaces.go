package service

import (
	"context"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

// StreamWriter interface for streaming export data to an HTTP response.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// AnalysisInterface defines the progressive analysis operations.
// Used for dependency injection and mocking in tests.
type AnalysisInterface interface {
	// AnalyzeContent produces a content analysis with progress reporting.
	AnalyzeContent(ctx context.Context, title, description string, platform domain.Platform, onProgress ProgressFunc) (*domain.ContentAnalysis, error)
	// ClassifyCreator classifies an intake submission with progress reporting.
	ClassifyCreator(ctx context.Context, platform, followerCount, description string, goals []string, onProgress ProgressFunc) (*domain.CreatorClassification, error)
}

// ContentServiceInterface defines content lifecycle operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	Create(ctx context.Context, input domain.NewContentInput) (*domain.ContentItem, error)
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	List(ctx context.Context, filter repository.ContentFilter) ([]domain.ContentItem, error)
	Transition(ctx context.Context, id string, newStatus domain.ContentStatus) (*domain.ContentItem, error)
	Analyze(ctx context.Context, id string, onProgress ProgressFunc) (*domain.ContentItem, error)
}

// IntakeServiceInterface defines creator onboarding operations.
// Used for dependency injection and mocking in tests.
type IntakeServiceInterface interface {
	Submit(ctx context.Context, in domain.IntakeSubmission, onProgress ProgressFunc) (*domain.CreatorProfile, error)
	Get(ctx context.Context, id string) (*domain.CreatorProfile, error)
	List(ctx context.Context) ([]domain.CreatorProfile, error)
}

// AnalyticsServiceInterface defines the derived read views.
// Used for dependency injection and mocking in tests.
type AnalyticsServiceInterface interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	Report(ctx context.Context) (*AnalyticsReport, error)
	TeamWorkloads(ctx context.Context) ([]domain.TeamMemberWorkload, error)
}

// ExportServiceInterface defines the CSV export operation.
// Used for dependency injection and mocking in tests.
type ExportServiceInterface interface {
	StreamContentCSV(ctx context.Context, filter repository.ContentFilter, w StreamWriter) (int, error)
}
