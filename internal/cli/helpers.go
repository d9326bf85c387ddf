package cli

import "time"

// formatDate renders an RFC3339 port timestamp as a plain date for display.
// Unparseable or empty values fall through unchanged.
func formatDate(rfc3339 string) string {
	if rfc3339 == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Format("2006-01-02")
}

// parseDate parses a plain yyyy-mm-dd argument into a UTC midnight instant.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// getStatusIcon returns an emoji icon for a milestone status
func getStatusIcon(status string) string {
	switch status {
	case "open":
		return "📦"
	case "submitted":
		return "📤"
	case "in_review":
		return "🔍"
	case "done":
		return "✅"
	case "locked":
		return "🔒"
	default:
		return "•"
	}
}
