package classifier

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

// fallbackTopic is used in summaries when no topic pattern matches.
const fallbackTopic = "content strategy"

var (
	leadingNumberRe = regexp.MustCompile(`^\d+\s+`)
	leadingPrefixRe = regexp.MustCompile(`(?i)^(How to|The|A|An)\s+`)
)

// Analyzer produces summaries, topics and title variations for content items.
type Analyzer struct {
	rules *RuleSet
	pick  func(n int) int
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithRules overrides the embedded rule set.
func WithRules(rs *RuleSet) AnalyzerOption {
	return func(a *Analyzer) { a.rules = rs }
}

// WithTemplatePicker overrides how the summary template is chosen among n
// candidates. The default derives the index from the input text so repeated
// analyses of the same content produce the same summary.
func WithTemplatePicker(pick func(n int) int) AnalyzerOption {
	return func(a *Analyzer) { a.pick = pick }
}

// NewAnalyzer creates an Analyzer with deterministic template selection.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{rules: DefaultRules()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces a summary, up to four topics and exactly three title
// variations. Total over its inputs: empty title and description still yield
// a complete result built from defaults.
func (a *Analyzer) Analyze(title, description string, platform domain.Platform) domain.ContentAnalysis {
	text := title + " " + description
	topics := a.rules.ExtractTopics(text)

	mainTopic := fallbackTopic
	if len(topics) > 0 {
		mainTopic = strings.ToLower(topics[0])
	}

	template := a.rules.SummaryTemplates[a.pickIndex(text, len(a.rules.SummaryTemplates))]
	summary := renderTemplate(template, string(platform), mainTopic)

	return domain.ContentAnalysis{
		Summary:         summary,
		TitleVariations: a.titleVariations(title),
		Topics:          topics,
	}
}

// titleVariations applies the three fixed title templates, in order, to a
// cleaned form of the title: question form, numbered-list form, value form.
func (a *Analyzer) titleVariations(title string) []string {
	topic := leadingNumberRe.ReplaceAllString(title, "")
	topic = leadingPrefixRe.ReplaceAllString(topic, "")

	variations := make([]string, 0, len(a.rules.TitleTemplates))
	for _, t := range a.rules.TitleTemplates {
		variations = append(variations, strings.ReplaceAll(t, "{topic}", topic))
	}
	return variations
}

func (a *Analyzer) pickIndex(text string, n int) int {
	if a.pick != nil {
		return a.pick(n) % n
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return int(h.Sum32() % uint32(n))
}

func renderTemplate(template, platform, topic string) string {
	out := strings.ReplaceAll(template, "{platform}", platform)
	return strings.ReplaceAll(out, "{topic}", topic)
}
