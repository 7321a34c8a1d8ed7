package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// PostgresActivityRepository implements ActivityRepository using PostgreSQL.
type PostgresActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresActivityRepository creates a new PostgresActivityRepository.
func NewPostgresActivityRepository(pool *pgxpool.Pool) *PostgresActivityRepository {
	return &PostgresActivityRepository{pool: pool}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, entry domain.ActivityEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_log (id, type, content_id, content_title, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, string(entry.Type), entry.ContentID, entry.ContentTitle,
		entry.Description, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, type, content_id, content_title, description, occurred_at
		FROM activity_log
		ORDER BY occurred_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var (
			entry     domain.ActivityEntry
			entryType string
		)
		if err := rows.Scan(&entry.ID, &entryType, &entry.ContentID, &entry.ContentTitle,
			&entry.Description, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entry.Type = domain.ActivityType(entryType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}
	return entries, nil
}
