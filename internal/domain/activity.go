package domain

import "time"

// ActivityType identifies what kind of event an activity entry records.
type ActivityType string

const (
	ActivityStatusChange ActivityType = "status_change"
	ActivityContentAdded ActivityType = "content_added"
	ActivityAIAnalysis   ActivityType = "ai_analysis"
	ActivityCreatorAdded ActivityType = "creator_added"
)

// ActivityEntry is one line in the recent-activity feed.
type ActivityEntry struct {
	ID           string       `json:"id"`
	Type         ActivityType `json:"type"`
	ContentID    string       `json:"content_id,omitempty"`
	ContentTitle string       `json:"content_title,omitempty"`
	Description  string       `json:"description"`
	Timestamp    time.Time    `json:"timestamp"`
}
