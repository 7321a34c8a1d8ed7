// Package classifier implements the rule-based text analysis behind content
// analysis and creator intake classification. The rules are a deliberate,
// explainable heuristic: ordered keyword tables and regex patterns, first
// match wins, always returning a result. Determinism is part of the contract.
package classifier

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// NicheRule maps a niche label to its keyword list. Rules are evaluated in
// declaration order.
type NicheRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// TopicRule fires its topic label when the pattern matches the input text.
type TopicRule struct {
	Pattern string `yaml:"pattern"`
	Topic   string `yaml:"topic"`

	re *regexp.Regexp
}

// StageRule matches when the follower count is strictly below MaxFollowers.
// A zero MaxFollowers means no ceiling (the last stage).
type StageRule struct {
	Name            string   `yaml:"name"`
	MaxFollowers    int      `yaml:"max_followers"`
	Recommendations []string `yaml:"recommendations"`
}

// FocusRule maps a niche to its recommended platforms in priority order.
type FocusRule struct {
	Niche     string   `yaml:"niche"`
	Platforms []string `yaml:"platforms"`
}

// NicheLine is an extra recommendation for a specific niche.
type NicheLine struct {
	Niche string `yaml:"niche"`
	Line  string `yaml:"line"`
}

// GoalLine is an extra recommendation gated on a selected goal. The line may
// contain a {platform} placeholder.
type GoalLine struct {
	Goal string `yaml:"goal"`
	Line string `yaml:"line"`
}

// RuleSet is the full ordered rule configuration.
type RuleSet struct {
	DefaultNiche         string      `yaml:"default_niche"`
	Niches               []NicheRule `yaml:"niches"`
	TopicRules           []TopicRule `yaml:"topic_rules"`
	SummaryTemplates     []string    `yaml:"summary_templates"`
	TitleTemplates       []string    `yaml:"title_templates"`
	PlatformFocus        []FocusRule `yaml:"platform_focus"`
	Stages               []StageRule `yaml:"stages"`
	NicheRecommendations []NicheLine `yaml:"niche_recommendations"`
	GoalRecommendations  []GoalLine  `yaml:"goal_recommendations"`
}

// ParseRules decodes and compiles a rule set from YAML.
func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if rs.DefaultNiche == "" {
		return nil, fmt.Errorf("parse rules: default_niche is required")
	}
	if len(rs.SummaryTemplates) == 0 || len(rs.TitleTemplates) == 0 {
		return nil, fmt.Errorf("parse rules: summary and title templates are required")
	}
	if len(rs.Stages) == 0 {
		return nil, fmt.Errorf("parse rules: at least one stage is required")
	}
	for i := range rs.TopicRules {
		re, err := regexp.Compile(rs.TopicRules[i].Pattern)
		if err != nil {
			return nil, fmt.Errorf("parse rules: topic pattern %q: %w", rs.TopicRules[i].Pattern, err)
		}
		rs.TopicRules[i].re = re
	}
	return &rs, nil
}

var defaultRules = mustLoadDefaultRules()

func mustLoadDefaultRules() *RuleSet {
	rs, err := ParseRules(rulesYAML)
	if err != nil {
		panic(err)
	}
	return rs
}

// DefaultRules returns the embedded rule set.
func DefaultRules() *RuleSet {
	return defaultRules
}
