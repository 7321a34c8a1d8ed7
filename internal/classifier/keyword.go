package classifier

import "strings"

// MatchNiche maps free text to the first niche whose keywords it hits, using
// two passes over the rules in declaration order: a confident pass requiring
// at least two keyword substrings, then a weak pass accepting a single hit.
// Falls back to the rule set's default niche. Never fails.
func (rs *RuleSet) MatchNiche(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range rs.Niches {
		matches := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches >= 2 {
			return rule.Label
		}
	}

	for _, rule := range rs.Niches {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}

	return rs.DefaultNiche
}

// maxTopics caps how many topic labels ExtractTopics returns.
const maxTopics = 4

// ExtractTopics collects the topic labels whose patterns match the text, in
// rule order, skipping duplicates, up to maxTopics. Returns an empty slice
// when nothing matches.
func (rs *RuleSet) ExtractTopics(text string) []string {
	topics := make([]string, 0, maxTopics)
	for _, rule := range rs.TopicRules {
		if len(topics) >= maxTopics {
			break
		}
		if !rule.re.MatchString(text) {
			continue
		}
		if containsString(topics, rule.Topic) {
			continue
		}
		topics = append(topics, rule.Topic)
	}
	return topics
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
