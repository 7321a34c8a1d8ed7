package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

func TestActivityHandler_ListActivity(t *testing.T) {
	t.Run("returns the feed newest first with relative times", func(t *testing.T) {
		store := repository.NewMemoryStore()
		ctx := context.Background()

		older := domain.ActivityEntry{
			ID:          uuid.New().String(),
			Type:        domain.ActivityContentAdded,
			Description: "Added new content: Reel hooks",
			Timestamp:   time.Now().Add(-2 * time.Hour),
		}
		newer := domain.ActivityEntry{
			ID:          uuid.New().String(),
			Type:        domain.ActivityStatusChange,
			Description: "Moved to Review",
			Timestamp:   time.Now().Add(-5 * time.Minute),
		}
		require.NoError(t, store.Activity().Create(ctx, older))
		require.NoError(t, store.Activity().Create(ctx, newer))

		h := NewActivityHandler(store.Activity())
		router := gin.New()
		router.GET("/api/v1/activity", h.ListActivity)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Items []ActivityEntryResponse `json:"items"`
			Count int                     `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 2, response.Count)
		assert.Equal(t, "Moved to Review", response.Items[0].Description)
		assert.Equal(t, "5 mins ago", response.Items[0].Relative)
		assert.Equal(t, "2 hours ago", response.Items[1].Relative)
	})

	t.Run("caps the feed at twenty entries", func(t *testing.T) {
		store := repository.NewMemoryStore()
		ctx := context.Background()

		for i := 0; i < 30; i++ {
			entry := domain.ActivityEntry{
				ID:          uuid.New().String(),
				Type:        domain.ActivityStatusChange,
				Description: "Moved",
				Timestamp:   time.Now().Add(-time.Duration(i) * time.Minute),
			}
			require.NoError(t, store.Activity().Create(ctx, entry))
		}

		h := NewActivityHandler(store.Activity())
		router := gin.New()
		router.GET("/api/v1/activity", h.ListActivity)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 20, response.Count)
	})

	t.Run("empty feed yields an empty list", func(t *testing.T) {
		store := repository.NewMemoryStore()

		h := NewActivityHandler(store.Activity())
		router := gin.New()
		router.GET("/api/v1/activity", h.ListActivity)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
	})
}
