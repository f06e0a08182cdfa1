package render

import (
	"fmt"

	"linear-memos-sync/internal/model"
)

// healthBadge renders a health key as a 12px colored dot followed by the
// status text. Unknown or absent keys fall back to onTrack.
func healthBadge(key string) string {
	status := model.HealthStatusFor(key)
	dot := fmt.Sprintf(`<span style="display:inline-block; width:12px; height:12px; border-radius:50%%; background-color:%s; margin-right:5px;"></span>`, status.Color)
	return dot + status.Text
}
