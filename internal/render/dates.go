package render

import (
	"html"
	"time"
)

// Date layouts Linear is known to send: full RFC3339 timestamps for
// createdAt/updatedAt, plain dates for startDate/targetDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// formatDate formats a source date string as "January 2, 2006". An absent
// field yields the fallback ("Not set" for start/target, empty otherwise);
// an unparseable value is passed through escaped rather than failing.
func formatDate(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return html.EscapeString(raw)
}
