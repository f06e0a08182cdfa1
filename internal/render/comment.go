package render

import (
	"fmt"
	"html"
	"strings"

	"linear-memos-sync/internal/model"
)

// UpdateComment renders a project update as an HTML comment fragment: a
// dated heading, then health, body, status change, and Linear link — each
// block only when the source field is present, in that fixed order.
func (r *Renderer) UpdateComment(u model.ProjectUpdatePayload) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<h2>Project Update - %s</h2>", r.now().Format("January 2, 2006")))

	if u.Health != "" {
		sb.WriteString(`<div class="linear-update-health"><p>Health: `)
		sb.WriteString(healthBadge(u.Health))
		sb.WriteString("</p></div>")
	}

	if u.Body != "" {
		sb.WriteString(`<div class="linear-update-body">`)
		sb.WriteString(r.formatter.Format(u.Body))
		sb.WriteString("</div>")
	}

	if u.State != nil && u.State.Name != "" {
		sb.WriteString(`<div class="update-state"><p>Status changed to: `)
		sb.WriteString(html.EscapeString(u.State.Name))
		sb.WriteString("</p></div>")
	}

	if u.URL != "" {
		sb.WriteString(fmt.Sprintf(`<p><a href="%s" target="_blank">View in Linear</a></p>`,
			html.EscapeString(u.URL)))
	}

	return sb.String()
}
