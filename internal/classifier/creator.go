package classifier

import (
	"strconv"
	"strings"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// maxRecommendations caps the combined recommendation list. Stage lines are
// appended first so they always survive truncation.
const maxRecommendations = 5

// CreatorClassifier maps intake submissions to a niche, monetization stage,
// platform focus and recommendation list.
type CreatorClassifier struct {
	rules *RuleSet
}

// NewCreatorClassifier creates a CreatorClassifier over the embedded rules.
func NewCreatorClassifier(opts ...func(*CreatorClassifier)) *CreatorClassifier {
	c := &CreatorClassifier{rules: DefaultRules()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCreatorRules overrides the embedded rule set.
func WithCreatorRules(rs *RuleSet) func(*CreatorClassifier) {
	return func(c *CreatorClassifier) { c.rules = rs }
}

// Classify is total over its inputs: malformed follower counts degrade to
// zero, unknown niches fall back to defaults, and no input produces an error.
func (c *CreatorClassifier) Classify(platform, followerCount, description string, goals []string) domain.CreatorClassification {
	niche := c.rules.MatchNiche(description)
	stage := c.stageFor(ParseFollowerCount(followerCount))

	return domain.CreatorClassification{
		Niche:           niche,
		PlatformFocus:   c.platformFocus(niche, platform),
		Stage:           stage.Name,
		Recommendations: c.recommendations(niche, stage, platform, goals),
	}
}

// ParseFollowerCount strips every non-digit character and parses what is
// left, defaulting to zero. Intentionally lossy: "15K" parses as 15, not
// 15000 — suffixes are not expanded.
func ParseFollowerCount(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// stageFor returns the first stage whose ceiling the count is strictly below;
// the last stage has no ceiling and catches everything else.
func (c *CreatorClassifier) stageFor(followers int) StageRule {
	for _, stage := range c.rules.Stages {
		if stage.MaxFollowers > 0 && followers < stage.MaxFollowers {
			return stage
		}
	}
	return c.rules.Stages[len(c.rules.Stages)-1]
}

// platformFocus joins the first two entries of the niche's platform table
// with " + ". An unmapped niche falls back to the literal input platform.
func (c *CreatorClassifier) platformFocus(niche, platform string) string {
	for _, rule := range c.rules.PlatformFocus {
		if rule.Niche != niche {
			continue
		}
		top := rule.Platforms
		if len(top) > 2 {
			top = top[:2]
		}
		return strings.Join(top, " + ")
	}
	return platform
}

// recommendations builds the ranked list: stage lines, then the niche line if
// one exists, then goal lines in rule order, truncated to five.
func (c *CreatorClassifier) recommendations(niche string, stage StageRule, platform string, goals []string) []string {
	recs := make([]string, 0, maxRecommendations)
	recs = append(recs, stage.Recommendations...)

	for _, nl := range c.rules.NicheRecommendations {
		if nl.Niche == niche {
			recs = append(recs, nl.Line)
			break
		}
	}

	for _, gl := range c.rules.GoalRecommendations {
		if containsString(goals, gl.Goal) {
			recs = append(recs, strings.ReplaceAll(gl.Line, "{platform}", platform))
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
