package domain

// ContentAnalysis is the result of running content analysis on a title,
// description and platform. TitleVariations always holds exactly three
// entries; Topics holds at most four.
type ContentAnalysis struct {
	Summary         string   `json:"summary"`
	TitleVariations []string `json:"title_variations"`
	Topics          []string `json:"topics"`
}

// CreatorClassification is the result of classifying an intake submission.
// Recommendations holds at most five entries.
type CreatorClassification struct {
	Niche           string   `json:"niche"`
	PlatformFocus   string   `json:"platform_focus"`
	Stage           string   `json:"stage"`
	Recommendations []string `json:"recommendations"`
}
