package domain

// NewContentInput carries the fields needed to create a content item. The
// assignee is an opaque team-member id; existence is not enforced here.
type NewContentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	AssignedTo  string `json:"assigned_to"`
}

// IntakeSubmission carries the creator intake form fields. FollowerCount is
// kept as the raw text the creator typed; parsing happens in classification.
type IntakeSubmission struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Platform      string   `json:"platform"`
	FollowerCount string   `json:"follower_count"`
	Description   string   `json:"description"`
	Goals         []string `json:"goals"`
}
