// Package seed populates the in-memory store with a representative pipeline
// so the dashboard and board have something to show on first run.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

// Roster is the static team roster. Postgres deployments get the same rows
// from the init migration; the in-memory store is seeded from here.
var Roster = []domain.TeamMember{
	{ID: "tm1", Name: "Sarah Chen", Role: "Content Manager", Email: "sarah@creatorchart.com", Avatar: "SC"},
	{ID: "tm2", Name: "Mike Johnson", Role: "Content Creator", Email: "mike@creatorchart.com", Avatar: "MJ"},
	{ID: "tm3", Name: "Emily Rodriguez", Role: "Designer", Email: "emily@creatorchart.com", Avatar: "ER"},
	{ID: "tm4", Name: "David Kim", Role: "Social Media Manager", Email: "david@creatorchart.com", Avatar: "DK"},
	{ID: "tm5", Name: "Lisa Wang", Role: "Analyst", Email: "lisa@creatorchart.com", Avatar: "LW"},
	{ID: "tm6", Name: "James Cooper", Role: "Video Producer", Email: "james@creatorchart.com", Avatar: "JC"},
	{ID: "tm7", Name: "Anna Patel", Role: "Community Manager", Email: "anna@creatorchart.com", Avatar: "AP"},
}

type sampleContent struct {
	title       string
	description string
	platform    domain.Platform
	status      domain.ContentStatus
	assignedTo  string
	createdDays int
	stageDays   int
	metrics     domain.Metrics
}

var sampleItems = []sampleContent{
	{"10 LinkedIn Growth Hacks for B2B Founders", "Comprehensive guide on leveraging LinkedIn for business growth", domain.PlatformLinkedIn, domain.StatusPublished, "tm2", 14, 2, domain.Metrics{Views: 12500, Likes: 890, Comments: 156, Shares: 234}},
	{"Behind the Scenes: Our Content Creation Process", "Instagram carousel showing our workflow", domain.PlatformInstagram, domain.StatusPublished, "tm3", 10, 3, domain.Metrics{Views: 8900, Likes: 1250, Comments: 89, Shares: 167}},
	{"The Future of AI in Content Marketing", "Deep dive thread on AI tools transforming content creation", domain.PlatformX, domain.StatusPublished, "tm2", 7, 1, domain.Metrics{Views: 45000, Likes: 2340, Comments: 456, Shares: 890}},
	{"How We Grew to 100K Subscribers", "YouTube documentary on our newsletter growth journey", domain.PlatformYouTube, domain.StatusPublished, "tm6", 21, 5, domain.Metrics{Views: 67000, Likes: 4500, Comments: 890, Shares: 1200}},
	{"Weekly Creator Economy Insights #47", "Newsletter covering latest trends and opportunities", domain.PlatformNewsletter, domain.StatusPublished, "tm1", 8, 1, domain.Metrics{Views: 15600, Likes: 0, Comments: 45, Shares: 230}},
	{"Creator Monetization Strategies for 2024", "Substack article on diverse revenue streams", domain.PlatformSubstack, domain.StatusReview, "tm1", 5, 1, domain.Metrics{}},
	{"Reddit AMA: Building a Creator Business", "Planned AMA session in r/Entrepreneur", domain.PlatformReddit, domain.StatusReview, "tm7", 4, 2, domain.Metrics{}},
	{"Instagram Reels: 5 Hooks That Convert", "Educational reel on content hooks", domain.PlatformInstagram, domain.StatusReview, "tm3", 3, 1, domain.Metrics{}},
	{"The Ultimate Guide to Content Repurposing", "Long-form LinkedIn article with infographics", domain.PlatformLinkedIn, domain.StatusDesign, "tm3", 6, 2, domain.Metrics{}},
	{"YouTube Thumbnail A/B Testing Results", "Video breaking down our thumbnail experiments", domain.PlatformYouTube, domain.StatusDesign, "tm6", 4, 1, domain.Metrics{}},
	{"Newsletter Design Best Practices", "Collection of newsletter layout tips", domain.PlatformNewsletter, domain.StatusDesign, "tm3", 8, 4, domain.Metrics{}},
	{"X Threads That Went Viral: Analysis", "Breaking down successful viral threads", domain.PlatformX, domain.StatusDrafting, "tm2", 9, 5, domain.Metrics{}},
	{"Reddit Community Building Strategies", "Guide to growing subreddit communities", domain.PlatformReddit, domain.StatusDrafting, "tm7", 7, 4, domain.Metrics{}},
	{"Substack vs ConvertKit: Deep Comparison", "Detailed platform comparison article", domain.PlatformSubstack, domain.StatusDrafting, "tm5", 5, 2, domain.Metrics{}},
	{"Instagram Algorithm Changes 2024", "Analysis of recent algorithm updates", domain.PlatformInstagram, domain.StatusDrafting, "tm4", 11, 6, domain.Metrics{}},
	{"LinkedIn Creator Mode Deep Dive", "Exploring all features of creator mode", domain.PlatformLinkedIn, domain.StatusIdeation, "tm2", 2, 1, domain.Metrics{}},
	{"YouTube Shorts Strategy Guide", "How to leverage Shorts for growth", domain.PlatformYouTube, domain.StatusIdeation, "tm6", 3, 1, domain.Metrics{}},
	{"X Premium Features Worth Using", "Review of X Premium subscription features", domain.PlatformX, domain.StatusIdeation, "tm4", 1, 0, domain.Metrics{}},
	{"Newsletter Sponsorship Guide", "How to attract and manage sponsors", domain.PlatformNewsletter, domain.StatusIdeation, "tm1", 2, 1, domain.Metrics{}},
	{"Reddit Gold: Mining Niche Communities", "Finding valuable subreddits for marketing", domain.PlatformReddit, domain.StatusIdeation, "tm7", 4, 2, domain.Metrics{}},
	{"How to Build a Personal Brand on LinkedIn", "Step-by-step branding guide", domain.PlatformLinkedIn, domain.StatusPublished, "tm2", 20, 12, domain.Metrics{Views: 34000, Likes: 2100, Comments: 340, Shares: 560}},
	{"Instagram Stories vs Reels: Data Analysis", "Which format performs better", domain.PlatformInstagram, domain.StatusPublished, "tm5", 18, 10, domain.Metrics{Views: 21000, Likes: 1800, Comments: 210, Shares: 380}},
	{"The Psychology of Viral Content", "What makes content shareable", domain.PlatformSubstack, domain.StatusPublished, "tm1", 25, 18, domain.Metrics{Views: 8900, Likes: 620, Comments: 89, Shares: 145}},
	{"Creator Tools We Use Daily", "Our tech stack revealed", domain.PlatformYouTube, domain.StatusPublished, "tm6", 15, 8, domain.Metrics{Views: 52000, Likes: 3200, Comments: 567, Shares: 890}},
	{"Building in Public: Month 6 Update", "Transparent growth journey thread", domain.PlatformX, domain.StatusPublished, "tm4", 12, 6, domain.Metrics{Views: 28000, Likes: 1900, Comments: 280, Shares: 450}},
}

// SampleData loads the sample pipeline into the given store.
func SampleData(ctx context.Context, store *repository.MemoryStore) error {
	store.SetTeam(Roster)

	now := time.Now()
	contentRepo := store.Content()
	for _, s := range sampleItems {
		createdAt := now.AddDate(0, 0, -s.createdDays)
		stageEnteredAt := now.AddDate(0, 0, -s.stageDays)
		item := domain.ContentItem{
			ID:             uuid.New().String(),
			Title:          s.title,
			Description:    s.description,
			Platform:       s.platform,
			Status:         s.status,
			AssignedTo:     s.assignedTo,
			CreatedAt:      createdAt,
			LastUpdated:    stageEnteredAt,
			Metrics:        s.metrics,
			StageEnteredAt: stageEnteredAt,
		}
		if s.status == domain.StatusPublished {
			publishedAt := stageEnteredAt
			item.PublishedAt = &publishedAt
		}
		if err := contentRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("seed content %q: %w", s.title, err)
		}
	}

	logger.Info("seeded sample data",
		slog.Int("content_items", len(sampleItems)),
		slog.Int("team_members", len(Roster)))
	return nil
}
