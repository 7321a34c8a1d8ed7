package domain

// TeamMember is a static roster entry. ActiveTasks and PublishedCount are
// derived from content assignments when the roster is served, never stored.
type TeamMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// TeamMemberWorkload is a roster entry with its derived task counts.
type TeamMemberWorkload struct {
	TeamMember
	ActiveTasks    int `json:"active_tasks"`
	PublishedCount int `json:"published_count"`
	TotalViews     int `json:"total_views"`
}
