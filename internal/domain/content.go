package domain

import (
	"fmt"
	"time"
)

// Platform is a distribution channel for a piece of content.
type Platform string

const (
	PlatformLinkedIn   Platform = "LinkedIn"
	PlatformInstagram  Platform = "Instagram"
	PlatformX          Platform = "X"
	PlatformReddit     Platform = "Reddit"
	PlatformSubstack   Platform = "Substack"
	PlatformYouTube    Platform = "YouTube"
	PlatformNewsletter Platform = "Newsletter"
)

// AllPlatforms lists every platform in display order.
var AllPlatforms = []Platform{
	PlatformLinkedIn,
	PlatformInstagram,
	PlatformX,
	PlatformReddit,
	PlatformSubstack,
	PlatformYouTube,
	PlatformNewsletter,
}

// ContentStatus is a pipeline stage. Stages are ordered for display, but
// transitions between any two stages are allowed; the board supports moving
// items backward.
type ContentStatus string

const (
	StatusIdeation  ContentStatus = "Ideation"
	StatusDrafting  ContentStatus = "Drafting"
	StatusDesign    ContentStatus = "Design"
	StatusReview    ContentStatus = "Review"
	StatusPublished ContentStatus = "Published"
)

// AllStatuses lists every pipeline stage in order.
var AllStatuses = []ContentStatus{
	StatusIdeation,
	StatusDrafting,
	StatusDesign,
	StatusReview,
	StatusPublished,
}

// IsValidPlatform checks if a platform is valid.
func IsValidPlatform(p string) bool {
	for _, platform := range AllPlatforms {
		if string(platform) == p {
			return true
		}
	}
	return false
}

// IsValidStatus checks if a status is valid.
func IsValidStatus(s string) bool {
	for _, status := range AllStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Metrics holds post-publication engagement counters. All counters stay zero
// until the item reaches Published.
type Metrics struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// EngagementRate returns the engagement percentage formatted to one decimal
// place, e.g. "3.4%". Zero views yields "0%".
func (m Metrics) EngagementRate() string {
	if m.Views == 0 {
		return "0%"
	}
	engagements := m.Likes + m.Comments + m.Shares
	rate := float64(engagements) / float64(m.Views) * 100
	return fmt.Sprintf("%.1f%%", rate)
}

// EngagementScore weighs interactions by effort: a share signals more than a
// like. Used for ranking, not reporting.
func (m Metrics) EngagementScore() int {
	return m.Views + m.Likes*10 + m.Comments*20 + m.Shares*30
}

// ContentItem is a unit of content moving through the pipeline.
//
// AISummary and AITitles are set together by analysis or are both nil.
// StageEnteredAt records when the item arrived in its current stage; elapsed
// days are derived from it rather than ticked by a background job.
type ContentItem struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Platform       Platform      `json:"platform"`
	Status         ContentStatus `json:"status"`
	AssignedTo     string        `json:"assigned_to"`
	CreatedAt      time.Time     `json:"created_at"`
	LastUpdated    time.Time     `json:"last_updated"`
	PublishedAt    *time.Time    `json:"published_at,omitempty"`
	Metrics        Metrics       `json:"metrics"`
	AISummary      *string       `json:"ai_summary,omitempty"`
	AITitles       []string      `json:"ai_titles,omitempty"`
	StageEnteredAt time.Time     `json:"stage_entered_at"`
}

// stuckAfterDays and veryStuckAfterDays are the bottleneck thresholds: an item
// sitting in a non-terminal stage longer than these is flagged on the board.
const (
	stuckAfterDays     = 3
	veryStuckAfterDays = 5
)

// DaysInStage returns the whole days the item has spent in its current stage.
func (c ContentItem) DaysInStage(now time.Time) int {
	if now.Before(c.StageEnteredAt) {
		return 0
	}
	return int(now.Sub(c.StageEnteredAt).Hours() / 24)
}

// IsStuck reports whether the item has sat in a pre-publication stage for more
// than three days.
func (c ContentItem) IsStuck(now time.Time) bool {
	return c.DaysInStage(now) > stuckAfterDays && c.Status != StatusPublished
}

// IsVeryStuck reports whether the item has sat in a pre-publication stage for
// more than five days. Every very-stuck item is also stuck; renderers should
// show the more severe flag.
func (c ContentItem) IsVeryStuck(now time.Time) bool {
	return c.DaysInStage(now) > veryStuckAfterDays && c.Status != StatusPublished
}

// Transition returns a copy of the item in the new stage with the stage clock
// reset. Moving to the stage the item is already in is a no-op. The first
// arrival at Published stamps PublishedAt.
func (c ContentItem) Transition(newStatus ContentStatus, now time.Time) ContentItem {
	if newStatus == c.Status {
		return c
	}
	next := c
	next.Status = newStatus
	next.StageEnteredAt = now
	next.LastUpdated = now
	if newStatus == StatusPublished && next.PublishedAt == nil {
		publishedAt := now
		next.PublishedAt = &publishedAt
	}
	return next
}

// AttachAnalysis returns a copy of the item carrying the analysis result.
// Stage and stage clock are untouched; re-analysis overwrites the previous
// result entirely.
func (c ContentItem) AttachAnalysis(a ContentAnalysis, now time.Time) ContentItem {
	next := c
	summary := a.Summary
	next.AISummary = &summary
	next.AITitles = append([]string(nil), a.TitleVariations...)
	next.LastUpdated = now
	return next
}
