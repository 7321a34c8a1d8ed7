package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashank123r/Creator-Chart-CMS/internal/mocks"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

func TestExportHandler_ExportContent(t *testing.T) {
	t.Run("streams CSV with download headers", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		h := NewExportHandler(mockService)

		mockService.EXPECT().
			StreamContentCSV(mock.Anything, repository.ContentFilter{}, mock.AnythingOfType("*handler.ginStreamWriter")).
			Run(func(ctx context.Context, filter repository.ContentFilter, w service.StreamWriter) {
				_ = w.Write([]byte("Title,Platform,Status\n"))
				_ = w.Write([]byte("Reel hooks,Instagram,Drafting\n"))
				w.Flush()
			}).
			Return(1, nil)

		router := gin.New()
		router.GET("/api/v1/content/export", h.ExportContent)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/export", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		expectedName := "content-export-" + time.Now().Format("2006-01-02") + ".csv"
		assert.Contains(t, w.Header().Get("Content-Disposition"), expectedName)

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Title,Platform,Status", lines[0])
		assert.Contains(t, lines[1], "Reel hooks")
	})

	t.Run("passes filters through to the service", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		h := NewExportHandler(mockService)

		filter := repository.ContentFilter{Search: "reel", Platform: "Instagram", Status: "Drafting"}
		mockService.EXPECT().
			StreamContentCSV(mock.Anything, filter, mock.Anything).
			Return(0, nil)

		router := gin.New()
		router.GET("/api/v1/content/export", h.ExportContent)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/content/export?search=reel&platform=Instagram&status=Drafting", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid filters before streaming", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		h := NewExportHandler(mockService)

		router := gin.New()
		router.GET("/api/v1/content/export", h.ExportContent)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/export?platform=MySpace", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mid-stream failure leaves partial output", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		h := NewExportHandler(mockService)

		mockService.EXPECT().
			StreamContentCSV(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, filter repository.ContentFilter, w service.StreamWriter) {
				_ = w.Write([]byte("Title,Platform,Status\n"))
			}).
			Return(0, errors.New("store unavailable"))

		router := gin.New()
		router.GET("/api/v1/content/export", h.ExportContent)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/export", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "Title,Platform,Status")
		assert.NotContains(t, w.Body.String(), "store unavailable")
	})
}
