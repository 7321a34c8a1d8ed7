package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// PostgresTeamRepository implements TeamRepository using PostgreSQL. The
// roster is seeded by migration and treated as read-only.
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamRepository creates a new PostgresTeamRepository.
func NewPostgresTeamRepository(pool *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

func (r *PostgresTeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, role, email, avatar
		FROM team_members
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Avatar); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read team members: %w", err)
	}
	return members, nil
}

func (r *PostgresTeamRepository) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, role, email, avatar
		FROM team_members
		WHERE id = $1`, id).Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}
