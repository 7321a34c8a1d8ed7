package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// MemoryStore is the session-only storage backend. Every read hands out a
// copy and every write replaces the stored value wholesale, so callers never
// share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	content  map[string]domain.ContentItem
	creators map[string]domain.CreatorProfile
	team     []domain.TeamMember
	activity []domain.ActivityEntry

	// insertion order, newest first, matching the dashboard's listing
	contentOrder []string
	creatorOrder []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		content:  make(map[string]domain.ContentItem),
		creators: make(map[string]domain.CreatorProfile),
	}
}

// Content returns the store's ContentRepository view.
func (s *MemoryStore) Content() ContentRepository { return (*memoryContentRepo)(s) }

// Creators returns the store's CreatorRepository view.
func (s *MemoryStore) Creators() CreatorRepository { return (*memoryCreatorRepo)(s) }

// Team returns the store's TeamRepository view.
func (s *MemoryStore) Team() TeamRepository { return (*memoryTeamRepo)(s) }

// Activity returns the store's ActivityRepository view.
func (s *MemoryStore) Activity() ActivityRepository { return (*memoryActivityRepo)(s) }

// SetTeam replaces the roster. Used at seed time; the roster is read-only
// afterwards.
func (s *MemoryStore) SetTeam(members []domain.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.team = append([]domain.TeamMember(nil), members...)
}

type memoryContentRepo MemoryStore

func (r *memoryContentRepo) Create(_ context.Context, item domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content[item.ID] = copyContent(item)
	r.contentOrder = append([]string{item.ID}, r.contentOrder...)
	return nil
}

func (r *memoryContentRepo) Get(_ context.Context, id string) (*domain.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.content[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyContent(item)
	return &out, nil
}

func (r *memoryContentRepo) List(_ context.Context, filter ContentFilter) ([]domain.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.ContentItem, 0, len(r.contentOrder))
	for _, id := range r.contentOrder {
		item, ok := r.content[id]
		if !ok {
			continue
		}
		if matchesFilter(item, filter) {
			items = append(items, copyContent(item))
		}
	}
	return items, nil
}

func (r *memoryContentRepo) Update(_ context.Context, item domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.content[item.ID]; !ok {
		return ErrNotFound
	}
	r.content[item.ID] = copyContent(item)
	return nil
}

func matchesFilter(item domain.ContentItem, filter ContentFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	if filter.Platform != "" && string(item.Platform) != filter.Platform {
		return false
	}
	if filter.Status != "" && string(item.Status) != filter.Status {
		return false
	}
	return true
}

func copyContent(item domain.ContentItem) domain.ContentItem {
	out := item
	out.AITitles = append([]string(nil), item.AITitles...)
	if item.PublishedAt != nil {
		publishedAt := *item.PublishedAt
		out.PublishedAt = &publishedAt
	}
	if item.AISummary != nil {
		summary := *item.AISummary
		out.AISummary = &summary
	}
	return out
}

type memoryCreatorRepo MemoryStore

func (r *memoryCreatorRepo) Create(_ context.Context, profile domain.CreatorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[profile.ID] = copyCreator(profile)
	r.creatorOrder = append([]string{profile.ID}, r.creatorOrder...)
	return nil
}

func (r *memoryCreatorRepo) Get(_ context.Context, id string) (*domain.CreatorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.creators[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyCreator(profile)
	return &out, nil
}

func (r *memoryCreatorRepo) List(_ context.Context) ([]domain.CreatorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profiles := make([]domain.CreatorProfile, 0, len(r.creatorOrder))
	for _, id := range r.creatorOrder {
		if profile, ok := r.creators[id]; ok {
			profiles = append(profiles, copyCreator(profile))
		}
	}
	return profiles, nil
}

func copyCreator(profile domain.CreatorProfile) domain.CreatorProfile {
	out := profile
	out.Goals = append([]string(nil), profile.Goals...)
	out.Recommendations = append([]string(nil), profile.Recommendations...)
	return out
}

type memoryTeamRepo MemoryStore

func (r *memoryTeamRepo) List(_ context.Context) ([]domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.TeamMember(nil), r.team...), nil
}

func (r *memoryTeamRepo) Get(_ context.Context, id string) (*domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, member := range r.team {
		if member.ID == id {
			out := member
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

type memoryActivityRepo MemoryStore

func (r *memoryActivityRepo) Create(_ context.Context, entry domain.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activity = append(r.activity, entry)
	return nil
}

func (r *memoryActivityRepo) ListRecent(_ context.Context, limit int) ([]domain.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := append([]domain.ActivityEntry(nil), r.activity...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
