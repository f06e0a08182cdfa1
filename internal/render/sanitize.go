package render

import "github.com/microcosm-cc/bluemonday"

// richTextPolicy sanitizes fields allowed to carry pre-approved markup
// (project descriptions). Everything else goes through html.EscapeString.
var richTextPolicy = bluemonday.UGCPolicy()

func sanitizeRichText(s string) string {
	if s == "" {
		return ""
	}
	return richTextPolicy.Sanitize(s)
}
