package repository

import (
	"context"
	"errors"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ContentFilter narrows a content listing. Empty fields match everything.
type ContentFilter struct {
	Search   string
	Platform string
	Status   string
}

// ContentRepository defines data access for content items. Mutations are
// whole-entity replaces: callers build the new value and Update swaps it in.
type ContentRepository interface {
	Create(ctx context.Context, item domain.ContentItem) error
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.ContentItem, error)
	Update(ctx context.Context, item domain.ContentItem) error
}

// CreatorRepository defines data access for creator profiles. Profiles are
// write-once; there is no update.
type CreatorRepository interface {
	Create(ctx context.Context, profile domain.CreatorProfile) error
	Get(ctx context.Context, id string) (*domain.CreatorProfile, error)
	List(ctx context.Context) ([]domain.CreatorProfile, error)
}

// TeamRepository defines read access to the static roster.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Get(ctx context.Context, id string) (*domain.TeamMember, error)
}

// ActivityRepository defines access to the recent-activity feed.
type ActivityRepository interface {
	Create(ctx context.Context, entry domain.ActivityEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
