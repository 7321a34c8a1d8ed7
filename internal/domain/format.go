package domain

import (
	"fmt"
	"time"
)

// FormatCount renders a counter with a K/M suffix, e.g. 12500 -> "12.5K".
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatRelative renders how long ago t was, e.g. "2 days ago".
func FormatRelative(t, now time.Time) string {
	diff := now.Sub(t)
	days := int(diff.Hours() / 24)
	hours := int(diff.Hours())
	minutes := int(diff.Minutes())

	switch {
	case days == 1:
		return "1 day ago"
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case hours == 1:
		return "1 hour ago"
	case hours > 1:
		return fmt.Sprintf("%d hours ago", hours)
	case minutes == 1:
		return "1 min ago"
	case minutes > 1:
		return fmt.Sprintf("%d mins ago", minutes)
	default:
		return "Just now"
	}
}
