package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// psql builds queries with $n placeholders for pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const contentColumns = `id, title, description, platform, status, assigned_to,
	created_at, last_updated, published_at, views, likes, comments, shares,
	ai_summary, ai_titles, stage_entered_at`

// PostgresContentRepository implements ContentRepository using PostgreSQL.
type PostgresContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContentRepository creates a new PostgresContentRepository.
func NewPostgresContentRepository(pool *pgxpool.Pool) *PostgresContentRepository {
	return &PostgresContentRepository{pool: pool}
}

func (r *PostgresContentRepository) Create(ctx context.Context, item domain.ContentItem) error {
	titles, err := marshalTitles(item.AITitles)
	if err != nil {
		return fmt.Errorf("marshal ai titles: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO content_items (`+contentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		item.ID, item.Title, item.Description, string(item.Platform), string(item.Status),
		item.AssignedTo, item.CreatedAt, item.LastUpdated, item.PublishedAt,
		item.Metrics.Views, item.Metrics.Likes, item.Metrics.Comments, item.Metrics.Shares,
		item.AISummary, titles, item.StageEnteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

func (r *PostgresContentRepository) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+contentColumns+`
		FROM content_items
		WHERE id = $1`, id)

	item, err := scanContentItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return item, nil
}

func (r *PostgresContentRepository) List(ctx context.Context, filter ContentFilter) ([]domain.ContentItem, error) {
	builder := psql.
		Select("id", "title", "description", "platform", "status", "assigned_to",
			"created_at", "last_updated", "published_at", "views", "likes", "comments",
			"shares", "ai_summary", "ai_titles", "stage_entered_at").
		From("content_items").
		OrderBy("created_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if filter.Platform != "" {
		builder = builder.Where(sq.Eq{"platform": filter.Platform})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read content items: %w", err)
	}
	return items, nil
}

func (r *PostgresContentRepository) Update(ctx context.Context, item domain.ContentItem) error {
	titles, err := marshalTitles(item.AITitles)
	if err != nil {
		return fmt.Errorf("marshal ai titles: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE content_items
		SET title = $2, description = $3, platform = $4, status = $5, assigned_to = $6,
			last_updated = $7, published_at = $8, views = $9, likes = $10,
			comments = $11, shares = $12, ai_summary = $13, ai_titles = $14,
			stage_entered_at = $15
		WHERE id = $1`,
		item.ID, item.Title, item.Description, string(item.Platform), string(item.Status),
		item.AssignedTo, item.LastUpdated, item.PublishedAt,
		item.Metrics.Views, item.Metrics.Likes, item.Metrics.Comments, item.Metrics.Shares,
		item.AISummary, titles, item.StageEnteredAt,
	)
	if err != nil {
		return fmt.Errorf("update content item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContentItem(row rowScanner) (*domain.ContentItem, error) {
	var (
		item     domain.ContentItem
		platform string
		status   string
		titles   []byte
	)
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &platform, &status, &item.AssignedTo,
		&item.CreatedAt, &item.LastUpdated, &item.PublishedAt,
		&item.Metrics.Views, &item.Metrics.Likes, &item.Metrics.Comments, &item.Metrics.Shares,
		&item.AISummary, &titles, &item.StageEnteredAt,
	)
	if err != nil {
		return nil, err
	}
	item.Platform = domain.Platform(platform)
	item.Status = domain.ContentStatus(status)
	if len(titles) > 0 {
		if err := json.Unmarshal(titles, &item.AITitles); err != nil {
			return nil, fmt.Errorf("unmarshal ai titles: %w", err)
		}
	}
	return &item, nil
}

func marshalTitles(titles []string) ([]byte, error) {
	if titles == nil {
		return nil, nil
	}
	return json.Marshal(titles)
}
