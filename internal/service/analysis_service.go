package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shashank123r/Creator-Chart-CMS/internal/classifier"
	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/metrics"
)

// AnalysisService runs the rule-based engine as progressive multi-step
// operations. The step structure mirrors what callers render in the UI; the
// simulated latency stands in for a real inference backend and is zero in
// tests.
type AnalysisService struct {
	analyzer  *classifier.Analyzer
	creator   *classifier.CreatorClassifier
	stepDelay time.Duration
	timeout   time.Duration
}

// NewAnalysisService creates an AnalysisService. A timeout of zero disables
// the per-run deadline.
func NewAnalysisService(analyzer *classifier.Analyzer, creator *classifier.CreatorClassifier, stepDelay, timeout time.Duration) *AnalysisService {
	return &AnalysisService{
		analyzer:  analyzer,
		creator:   creator,
		stepDelay: stepDelay,
		timeout:   timeout,
	}
}

// runCtx applies the per-run timeout when one is configured.
func (s *AnalysisService) runCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// AnalyzeContent produces a content analysis, reporting progress along the
// way. It fails only on cancellation; the classifier itself is total.
func (s *AnalysisService) AnalyzeContent(ctx context.Context, title, description string, platform domain.Platform, onProgress ProgressFunc) (*domain.ContentAnalysis, error) {
	ctx, cancel := s.runCtx(ctx)
	defer cancel()

	start := time.Now()
	var result domain.ContentAnalysis

	steps := []progressStep{
		{message: "Analyzing content structure...", percent: 20},
		{message: "Extracting key topics and themes...", percent: 40},
		{message: "Generating title variations...", percent: 60},
		{message: "Creating content summary...", percent: 80},
		{message: "Finalizing recommendations...", percent: 100, run: func() error {
			result = s.analyzer.Analyze(title, description, platform)
			return nil
		}},
	}

	if err := runSteps(ctx, s.stepDelay, onProgress, steps); err != nil {
		metrics.ObserveAnalysis("content", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("analyze content: %w", err)
	}

	metrics.ObserveAnalysis("content", "success", time.Since(start).Seconds())
	logger.Debug("content analysis complete",
		slog.String("platform", string(platform)),
		slog.Int("topics", len(result.Topics)))
	return &result, nil
}

// ClassifyCreator classifies an intake submission, reporting progress along
// the way.
func (s *AnalysisService) ClassifyCreator(ctx context.Context, platform, followerCount, description string, goals []string, onProgress ProgressFunc) (*domain.CreatorClassification, error) {
	ctx, cancel := s.runCtx(ctx)
	defer cancel()

	start := time.Now()
	var result domain.CreatorClassification

	steps := []progressStep{
		{message: "Analyzing your content focus...", percent: 25},
		{message: "Identifying growth opportunities...", percent: 50},
		{message: "Mapping monetization potential...", percent: 75},
		{message: "Generating personalized recommendations...", percent: 100, run: func() error {
			result = s.creator.Classify(platform, followerCount, description, goals)
			return nil
		}},
	}

	if err := runSteps(ctx, s.stepDelay, onProgress, steps); err != nil {
		metrics.ObserveAnalysis("creator", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("classify creator: %w", err)
	}

	metrics.ObserveAnalysis("creator", "success", time.Since(start).Seconds())
	metrics.CreatorsClassified.WithLabelValues(result.Niche, result.Stage).Inc()
	logger.Debug("creator classification complete",
		slog.String("niche", result.Niche),
		slog.String("stage", result.Stage))
	return &result, nil
}
