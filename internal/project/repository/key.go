package repository

import "strings"

// SanitizeProjectID derives the canonical lookup key from an external
// project id: lowercased, runs of non-alphanumerics collapsed to single
// hyphens, leading/trailing hyphens trimmed. Idempotent.
func SanitizeProjectID(id string) string {
	var sb strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
