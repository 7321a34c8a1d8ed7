package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

const creatorColumns = `id, name, email, platform, follower_count, description,
	goals, niche, platform_focus, stage, recommendations, submitted_at`

// PostgresCreatorRepository implements CreatorRepository using PostgreSQL.
type PostgresCreatorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCreatorRepository creates a new PostgresCreatorRepository.
func NewPostgresCreatorRepository(pool *pgxpool.Pool) *PostgresCreatorRepository {
	return &PostgresCreatorRepository{pool: pool}
}

func (r *PostgresCreatorRepository) Create(ctx context.Context, profile domain.CreatorProfile) error {
	goals, err := json.Marshal(profile.Goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	recs, err := json.Marshal(profile.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO creator_profiles (`+creatorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		profile.ID, profile.Name, profile.Email, profile.Platform, profile.FollowerCount,
		profile.Description, goals, profile.Niche, profile.PlatformFocus, profile.Stage,
		recs, profile.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert creator profile: %w", err)
	}
	return nil
}

func (r *PostgresCreatorRepository) Get(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+creatorColumns+`
		FROM creator_profiles
		WHERE id = $1`, id)

	profile, err := scanCreatorProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get creator profile: %w", err)
	}
	return profile, nil
}

func (r *PostgresCreatorRepository) List(ctx context.Context) ([]domain.CreatorProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+creatorColumns+`
		FROM creator_profiles
		ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list creator profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.CreatorProfile
	for rows.Next() {
		profile, err := scanCreatorProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creator profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read creator profiles: %w", err)
	}
	return profiles, nil
}

func scanCreatorProfile(row rowScanner) (*domain.CreatorProfile, error) {
	var (
		profile domain.CreatorProfile
		goals   []byte
		recs    []byte
	)
	err := row.Scan(
		&profile.ID, &profile.Name, &profile.Email, &profile.Platform,
		&profile.FollowerCount, &profile.Description, &goals, &profile.Niche,
		&profile.PlatformFocus, &profile.Stage, &recs, &profile.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(goals) > 0 {
		if err := json.Unmarshal(goals, &profile.Goals); err != nil {
			return nil, fmt.Errorf("unmarshal goals: %w", err)
		}
	}
	if len(recs) > 0 {
		if err := json.Unmarshal(recs, &profile.Recommendations); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations: %w", err)
		}
	}
	return &profile, nil
}
