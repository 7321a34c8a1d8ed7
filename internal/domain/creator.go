package domain

import "time"

// CreatorProfile is an intake submission together with the classification
// computed at submission time. Profiles are immutable once stored; the four
// classification fields are always populated together.
type CreatorProfile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Platform        string    `json:"platform"`
	FollowerCount   string    `json:"follower_count"`
	Description     string    `json:"description"`
	Goals           []string  `json:"goals"`
	Niche           string    `json:"niche"`
	PlatformFocus   string    `json:"platform_focus"`
	Stage           string    `json:"stage"`
	Recommendations []string  `json:"recommendations"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// GoalOptions is the fixed set of goals the intake form offers.
var GoalOptions = []string{
	"Grow audience",
	"Build authority",
	"Monetize content",
	"Launch course",
	"Get sponsorships",
	"Build community",
}

// IntakePlatformOptions is the fixed set of platforms the intake form offers.
// Broader than the content pipeline's Platform enum on purpose: creators may
// arrive from channels the pipeline does not publish to.
var IntakePlatformOptions = []string{
	"LinkedIn",
	"Instagram",
	"X",
	"YouTube",
	"TikTok",
	"Substack",
	"Other",
}

// IsValidGoal checks if a goal is one of the intake options.
func IsValidGoal(goal string) bool {
	for _, g := range GoalOptions {
		if g == goal {
			return true
		}
	}
	return false
}

// IsValidIntakePlatform checks if a platform is one of the intake options.
func IsValidIntakePlatform(platform string) bool {
	for _, p := range IntakePlatformOptions {
		if p == platform {
			return true
		}
	}
	return false
}
