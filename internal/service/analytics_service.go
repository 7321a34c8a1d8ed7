package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

// DashboardSummary holds the numbers behind the dashboard metric cards.
type DashboardSummary struct {
	TotalContent      int     `json:"total_content"`
	PublishedThisWeek int     `json:"published_this_week"`
	StuckItems        int     `json:"stuck_items"`
	TotalViews        int     `json:"total_views"`
	TotalLikes        int     `json:"total_likes"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// PlatformBreakdown aggregates content by platform.
type PlatformBreakdown struct {
	Platform  string `json:"platform"`
	Count     int    `json:"count"`
	Published int    `json:"published"`
	Views     int    `json:"views"`
}

// StatusBreakdown counts content per pipeline stage.
type StatusBreakdown struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// AnalyticsReport is the full analytics view.
type AnalyticsReport struct {
	Platforms     []PlatformBreakdown         `json:"platforms"`
	Statuses      []StatusBreakdown           `json:"statuses"`
	Team          []domain.TeamMemberWorkload `json:"team"`
	TopContent    []domain.ContentItem        `json:"top_content"`
	TotalViews    int                         `json:"total_views"`
	TotalLikes    int                         `json:"total_likes"`
	TotalComments int                         `json:"total_comments"`
	TotalShares   int                         `json:"total_shares"`
}

// AnalyticsService computes derived views over the pipeline: dashboard
// numbers, per-platform and per-stage breakdowns, and team workload. It only
// reads; all aggregation happens in memory over the repository listing.
type AnalyticsService struct {
	contentRepo repository.ContentRepository
	teamRepo    repository.TeamRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(contentRepo repository.ContentRepository, teamRepo repository.TeamRepository) *AnalyticsService {
	return &AnalyticsService{
		contentRepo: contentRepo,
		teamRepo:    teamRepo,
	}
}

// Dashboard computes the metric-card numbers.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	items, err := s.contentRepo.List(ctx, repository.ContentFilter{})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	now := time.Now()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	summary := &DashboardSummary{TotalContent: len(items)}
	published := 0
	var rateSum float64
	for _, item := range items {
		summary.TotalViews += item.Metrics.Views
		summary.TotalLikes += item.Metrics.Likes
		if item.IsStuck(now) {
			summary.StuckItems++
		}
		if item.Status == domain.StatusPublished {
			published++
			rateSum += engagementRateValue(item.Metrics)
			if item.PublishedAt != nil && item.PublishedAt.After(weekAgo) {
				summary.PublishedThisWeek++
			}
		}
	}
	if published > 0 {
		summary.AvgEngagementRate = rateSum / float64(published)
	}
	return summary, nil
}

// Report computes the full analytics view.
func (s *AnalyticsService) Report(ctx context.Context) (*AnalyticsReport, error) {
	items, err := s.contentRepo.List(ctx, repository.ContentFilter{})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	report := &AnalyticsReport{}

	for _, platform := range domain.AllPlatforms {
		breakdown := PlatformBreakdown{Platform: string(platform)}
		for _, item := range items {
			if item.Platform != platform {
				continue
			}
			breakdown.Count++
			breakdown.Views += item.Metrics.Views
			if item.Status == domain.StatusPublished {
				breakdown.Published++
			}
		}
		report.Platforms = append(report.Platforms, breakdown)
	}

	for _, status := range domain.AllStatuses {
		breakdown := StatusBreakdown{Status: string(status)}
		for _, item := range items {
			if item.Status == status {
				breakdown.Count++
			}
		}
		report.Statuses = append(report.Statuses, breakdown)
	}

	team, err := s.teamWorkloads(ctx, items)
	if err != nil {
		return nil, err
	}
	report.Team = team

	for _, item := range items {
		report.TotalViews += item.Metrics.Views
		report.TotalLikes += item.Metrics.Likes
		report.TotalComments += item.Metrics.Comments
		report.TotalShares += item.Metrics.Shares
	}

	report.TopContent = topPublished(items, 5)
	return report, nil
}

// TeamWorkloads returns the roster with derived task counts.
func (s *AnalyticsService) TeamWorkloads(ctx context.Context) ([]domain.TeamMemberWorkload, error) {
	items, err := s.contentRepo.List(ctx, repository.ContentFilter{})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return s.teamWorkloads(ctx, items)
}

func (s *AnalyticsService) teamWorkloads(ctx context.Context, items []domain.ContentItem) ([]domain.TeamMemberWorkload, error) {
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}

	workloads := make([]domain.TeamMemberWorkload, 0, len(members))
	for _, member := range members {
		w := domain.TeamMemberWorkload{TeamMember: member}
		for _, item := range items {
			if item.AssignedTo != member.ID {
				continue
			}
			w.TotalViews += item.Metrics.Views
			if item.Status == domain.StatusPublished {
				w.PublishedCount++
			} else {
				w.ActiveTasks++
			}
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}

func topPublished(items []domain.ContentItem, n int) []domain.ContentItem {
	published := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Status == domain.StatusPublished {
			published = append(published, item)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Metrics.Views > published[j].Metrics.Views
	})
	if len(published) > n {
		published = published[:n]
	}
	return published
}

// engagementRateValue parses the formatted rate back to a float for
// averaging, keeping one source of truth for the formula.
func engagementRateValue(m domain.Metrics) float64 {
	rate := strings.TrimSuffix(m.EngagementRate(), "%")
	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0
	}
	return v
}
