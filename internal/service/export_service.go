package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shashank123r/Creator-Chart-CMS/internal/metrics"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

// exportTimeFormat matches the short dates the dashboard shows in exports.
const exportTimeFormat = "2006-01-02"

// ExportService streams the content database as CSV.
type ExportService struct {
	contentRepo repository.ContentRepository
}

// NewExportService creates a new ExportService.
func NewExportService(contentRepo repository.ContentRepository) *ExportService {
	return &ExportService{contentRepo: contentRepo}
}

// streamWriterAdapter lets encoding/csv write through a StreamWriter.
type streamWriterAdapter struct {
	w   StreamWriter
	err error
}

func (a *streamWriterAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		a.err = err
		return 0, err
	}
	return len(p), nil
}

// StreamContentCSV writes the filtered content listing as CSV directly to
// the writer and returns the number of data rows written.
func (s *ExportService) StreamContentCSV(ctx context.Context, filter repository.ContentFilter, w StreamWriter) (int, error) {
	items, err := s.contentRepo.List(ctx, filter)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("load content: %w", err)
	}

	adapter := &streamWriterAdapter{w: w}
	csvWriter := csv.NewWriter(adapter)

	header := []string{"Title", "Platform", "Status", "Assigned To", "Created", "Views", "Likes", "Comments", "Shares"}
	if err := csvWriter.Write(header); err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	count := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			metrics.ExportsTotal.WithLabelValues("error").Inc()
			return count, err
		}
		row := []string{
			item.Title,
			string(item.Platform),
			string(item.Status),
			item.AssignedTo,
			item.CreatedAt.Format(exportTimeFormat),
			strconv.Itoa(item.Metrics.Views),
			strconv.Itoa(item.Metrics.Likes),
			strconv.Itoa(item.Metrics.Comments),
			strconv.Itoa(item.Metrics.Shares),
		}
		if err := csvWriter.Write(row); err != nil {
			metrics.ExportsTotal.WithLabelValues("error").Inc()
			return count, fmt.Errorf("write csv row: %w", err)
		}
		count++
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		return count, fmt.Errorf("flush csv: %w", err)
	}
	w.Flush()

	metrics.ExportsTotal.WithLabelValues("success").Inc()
	metrics.ExportRecords.Add(float64(count))
	return count, nil
}
