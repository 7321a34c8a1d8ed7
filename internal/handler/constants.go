package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// activityFeedLimit caps the recent-activity listing.
const activityFeedLimit = 20
