package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashank123r/Creator-Chart-CMS/internal/classifier"
	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/mocks"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
	"github.com/shashank123r/Creator-Chart-CMS/internal/validator"
)

func newContentService(t *testing.T, store *repository.MemoryStore) (*service.ContentService, *mocks.MockAnalysisInterface) {
	t.Helper()
	analysis := mocks.NewMockAnalysisInterface(t)
	svc := service.NewContentService(store.Content(), store.Activity(), analysis, validator.NewValidator())
	return svc, analysis
}

func validInput() domain.NewContentInput {
	return domain.NewContentInput{
		Title:       "LinkedIn Growth Tips",
		Description: "A practical guide",
		Platform:    "LinkedIn",
		AssignedTo:  "tm2",
	}
}

func TestContentService_Create(t *testing.T) {
	t.Run("stores item in Ideation with zero metrics", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		assert.NotEmpty(t, item.ID)
		assert.Equal(t, domain.StatusIdeation, item.Status)
		assert.Equal(t, domain.Metrics{}, item.Metrics)
		assert.Nil(t, item.AISummary)
		assert.Nil(t, item.AITitles)
		assert.Equal(t, item.CreatedAt, item.StageEnteredAt)

		stored, err := store.Content().Get(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.Title, stored.Title)
	})

	t.Run("records an activity entry", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		_, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		entries, err := store.Activity().ListRecent(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.ActivityContentAdded, entries[0].Type)
		assert.Equal(t, "Added new content: LinkedIn Growth Tips", entries[0].Description)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		input := validInput()
		input.Title = ""
		_, err := svc.Create(context.Background(), input)
		require.Error(t, err)

		items, _ := store.Content().List(context.Background(), repository.ContentFilter{})
		assert.Empty(t, items)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		input := validInput()
		input.Platform = "MySpace"
		_, err := svc.Create(context.Background(), input)
		require.Error(t, err)
	})
}

func TestContentService_Transition(t *testing.T) {
	t.Run("moves item and records activity", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		moved, err := svc.Transition(context.Background(), item.ID, domain.StatusDrafting)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDrafting, moved.Status)
		assert.True(t, moved.StageEnteredAt.After(item.StageEnteredAt) || moved.StageEnteredAt.Equal(item.StageEnteredAt))

		entries, _ := store.Activity().ListRecent(context.Background(), 10)
		require.Len(t, entries, 2)
		assert.Equal(t, "Moved to Drafting", entries[0].Description)
	})

	t.Run("same stage is a no-op without activity", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		same, err := svc.Transition(context.Background(), item.ID, domain.StatusIdeation)
		require.NoError(t, err)
		assert.Equal(t, item.StageEnteredAt, same.StageEnteredAt)

		entries, _ := store.Activity().ListRecent(context.Background(), 10)
		assert.Len(t, entries, 1) // only the create entry
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		_, err := svc.Transition(context.Background(), "missing", domain.StatusReview)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("publishing stamps the publish date", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		published, err := svc.Transition(context.Background(), item.ID, domain.StatusPublished)
		require.NoError(t, err)
		require.NotNil(t, published.PublishedAt)
	})
}

func TestContentService_Analyze(t *testing.T) {
	analysisResult := &domain.ContentAnalysis{
		Summary:         "a summary",
		TitleVariations: []string{"one", "two", "three"},
		Topics:          []string{"LinkedIn Strategy"},
	}

	t.Run("attaches result and records activity", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, analysis := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		analysis.EXPECT().
			AnalyzeContent(mock.Anything, item.Title, item.Description, item.Platform, mock.Anything).
			Return(analysisResult, nil)

		updated, err := svc.Analyze(context.Background(), item.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, updated.AISummary)
		assert.Equal(t, "a summary", *updated.AISummary)
		assert.Len(t, updated.AITitles, 3)
		assert.Equal(t, domain.StatusIdeation, updated.Status)

		stored, _ := store.Content().Get(context.Background(), item.ID)
		require.NotNil(t, stored.AISummary)

		entries, _ := store.Activity().ListRecent(context.Background(), 10)
		require.Len(t, entries, 2)
		assert.Equal(t, domain.ActivityAIAnalysis, entries[0].Type)
	})

	t.Run("failed analysis leaves the item untouched", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, analysis := newContentService(t, store)

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		analysis.EXPECT().
			AnalyzeContent(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("cancelled"))

		_, err = svc.Analyze(context.Background(), item.ID, nil)
		require.Error(t, err)

		stored, _ := store.Content().Get(context.Background(), item.ID)
		assert.Nil(t, stored.AISummary)
		assert.Nil(t, stored.AITitles)
	})

	t.Run("unknown id returns not found without running analysis", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc, _ := newContentService(t, store)

		_, err := svc.Analyze(context.Background(), "missing", nil)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("works end to end with the real engine", func(t *testing.T) {
		store := repository.NewMemoryStore()
		analysisSvc := service.NewAnalysisService(classifier.NewAnalyzer(), classifier.NewCreatorClassifier(), 0, 0)
		svc := service.NewContentService(store.Content(), store.Activity(), analysisSvc, validator.NewValidator())

		item, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		updated, err := svc.Analyze(context.Background(), item.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, updated.AISummary)
		assert.NotEmpty(t, *updated.AISummary)
		assert.Len(t, updated.AITitles, 3)
	})
}
