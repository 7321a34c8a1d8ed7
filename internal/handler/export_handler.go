package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/middleware"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
)

// ExportHandler handles export-related HTTP requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// ExportContent handles GET /api/v1/content/export?search=...&platform=...&status=...
// It streams the filtered content list as a CSV download.
func (h *ExportHandler) ExportContent(c *gin.Context) {
	filter := repository.ContentFilter{
		Search:   c.Query("search"),
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
	}
	if filter.Platform != "" && !domain.IsValidPlatform(filter.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform filter"})
		return
	}
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	requestID := middleware.GetRequestID(c)

	c.Header("Content-Type", "text/csv")
	c.Header("Transfer-Encoding", "chunked")
	c.Header("X-Content-Type-Options", "nosniff")

	filename := "content-export-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")

	writer := &ginStreamWriter{writer: c.Writer}

	count, err := h.exportService.StreamContentCSV(c.Request.Context(), filter, writer)
	if err != nil {
		// Headers are already out, so the error can only be logged.
		logger.Error("content export failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return
	}

	logger.Info("content export completed",
		slog.String("request_id", requestID),
		slog.Int("rows", count))
}
