package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_EngagementRate(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    string
	}{
		{"zero views", Metrics{Views: 0, Likes: 100}, "0%"},
		{"typical rate", Metrics{Views: 1000, Likes: 20, Comments: 10, Shares: 5}, "3.5%"},
		{"rounds to one decimal", Metrics{Views: 3000, Likes: 100}, "3.3%"},
		{"over one hundred percent", Metrics{Views: 10, Likes: 15}, "150.0%"},
		{"all zero", Metrics{}, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.metrics.EngagementRate())
		})
	}
}

func TestMetrics_EngagementScore(t *testing.T) {
	m := Metrics{Views: 100, Likes: 10, Comments: 5, Shares: 2}
	assert.Equal(t, 100+10*10+5*20+2*30, m.EngagementScore())
	assert.Zero(t, Metrics{}.EngagementScore())
}

func TestContentItem_DaysInStage(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entered time.Time
		want    int
	}{
		{"same moment", now, 0},
		{"under a day", now.Add(-23 * time.Hour), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"four days", now.Add(-4 * 24 * time.Hour), 4},
		{"clock skew stays at zero", now.Add(time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ContentItem{StageEnteredAt: tt.entered}
			assert.Equal(t, tt.want, item.DaysInStage(now))
		})
	}
}

func TestContentItem_Stuck(t *testing.T) {
	now := time.Now()

	t.Run("fresh item is not stuck", func(t *testing.T) {
		item := ContentItem{Status: StatusDrafting, StageEnteredAt: now.AddDate(0, 0, -2)}
		assert.False(t, item.IsStuck(now))
		assert.False(t, item.IsVeryStuck(now))
	})

	t.Run("three days is the boundary, not past it", func(t *testing.T) {
		item := ContentItem{Status: StatusDrafting, StageEnteredAt: now.AddDate(0, 0, -3)}
		assert.False(t, item.IsStuck(now))
	})

	t.Run("four days is stuck but not very stuck", func(t *testing.T) {
		item := ContentItem{Status: StatusDrafting, StageEnteredAt: now.AddDate(0, 0, -4)}
		assert.True(t, item.IsStuck(now))
		assert.False(t, item.IsVeryStuck(now))
	})

	t.Run("six days is both", func(t *testing.T) {
		item := ContentItem{Status: StatusReview, StageEnteredAt: now.AddDate(0, 0, -6)}
		assert.True(t, item.IsStuck(now))
		assert.True(t, item.IsVeryStuck(now))
	})

	t.Run("published items are never stuck", func(t *testing.T) {
		item := ContentItem{Status: StatusPublished, StageEnteredAt: now.AddDate(0, 0, -30)}
		assert.False(t, item.IsStuck(now))
		assert.False(t, item.IsVeryStuck(now))
	})
}

func TestContentItem_Transition(t *testing.T) {
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	base := ContentItem{
		ID:             "abc",
		Status:         StatusIdeation,
		CreatedAt:      created,
		LastUpdated:    created,
		StageEnteredAt: created,
	}

	t.Run("resets the stage clock", func(t *testing.T) {
		next := base.Transition(StatusDrafting, now)

		assert.Equal(t, StatusDrafting, next.Status)
		assert.Equal(t, now, next.StageEnteredAt)
		assert.Equal(t, now, next.LastUpdated)
		assert.Nil(t, next.PublishedAt)
		// Original is untouched.
		assert.Equal(t, StatusIdeation, base.Status)
	})

	t.Run("same stage is a no-op", func(t *testing.T) {
		next := base.Transition(StatusIdeation, now)

		assert.Equal(t, created, next.StageEnteredAt)
		assert.Equal(t, created, next.LastUpdated)
	})

	t.Run("first arrival at Published stamps PublishedAt", func(t *testing.T) {
		next := base.Transition(StatusPublished, now)

		require.NotNil(t, next.PublishedAt)
		assert.Equal(t, now, *next.PublishedAt)
	})

	t.Run("re-publishing keeps the original publish date", func(t *testing.T) {
		published := base.Transition(StatusPublished, now)
		later := now.AddDate(0, 0, 5)

		backToReview := published.Transition(StatusReview, later)
		require.NotNil(t, backToReview.PublishedAt)
		assert.Equal(t, now, *backToReview.PublishedAt)

		evenLater := later.AddDate(0, 0, 2)
		republished := backToReview.Transition(StatusPublished, evenLater)
		require.NotNil(t, republished.PublishedAt)
		assert.Equal(t, now, *republished.PublishedAt)
	})

	t.Run("backward moves also reset the clock", func(t *testing.T) {
		drafting := base.Transition(StatusDrafting, now)
		later := now.AddDate(0, 0, 1)

		back := drafting.Transition(StatusIdeation, later)
		assert.Equal(t, StatusIdeation, back.Status)
		assert.Equal(t, later, back.StageEnteredAt)
	})
}

func TestContentItem_AttachAnalysis(t *testing.T) {
	now := time.Now()
	item := ContentItem{
		ID:             "abc",
		Status:         StatusDrafting,
		StageEnteredAt: now.AddDate(0, 0, -2),
	}

	analysis := ContentAnalysis{
		Summary:         "a summary",
		TitleVariations: []string{"one", "two", "three"},
		Topics:          []string{"Content Creation"},
	}

	t.Run("copies summary and titles", func(t *testing.T) {
		next := item.AttachAnalysis(analysis, now)

		require.NotNil(t, next.AISummary)
		assert.Equal(t, "a summary", *next.AISummary)
		assert.Equal(t, []string{"one", "two", "three"}, next.AITitles)
	})

	t.Run("stage and clock untouched", func(t *testing.T) {
		next := item.AttachAnalysis(analysis, now)

		assert.Equal(t, StatusDrafting, next.Status)
		assert.Equal(t, item.StageEnteredAt, next.StageEnteredAt)
	})

	t.Run("re-analysis overwrites entirely", func(t *testing.T) {
		first := item.AttachAnalysis(analysis, now)
		second := first.AttachAnalysis(ContentAnalysis{
			Summary:         "newer",
			TitleVariations: []string{"only"},
		}, now)

		assert.Equal(t, "newer", *second.AISummary)
		assert.Equal(t, []string{"only"}, second.AITitles)
	})

	t.Run("titles slice is independent of the input", func(t *testing.T) {
		titles := []string{"one", "two", "three"}
		next := item.AttachAnalysis(ContentAnalysis{Summary: "s", TitleVariations: titles}, now)

		titles[0] = "mutated"
		assert.Equal(t, "one", next.AITitles[0])
	})
}

func TestValidators(t *testing.T) {
	for _, p := range AllPlatforms {
		assert.True(t, IsValidPlatform(string(p)))
	}
	assert.False(t, IsValidPlatform("MySpace"))
	assert.False(t, IsValidPlatform(""))

	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(string(s)))
	}
	assert.False(t, IsValidStatus("Archived"))
}
