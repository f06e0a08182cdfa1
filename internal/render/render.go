package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"linear-memos-sync/internal/model"
)

// Renderer turns Linear payloads into post and comment content. The post
// template is fixed at construction; markdown conversion for update bodies
// is pluggable via BodyFormatter.
type Renderer struct {
	template  string
	formatter BodyFormatter
	now       func() time.Time
}

// New creates a Renderer. A nil now falls back to time.Now (tests inject a
// fixed clock for deterministic output).
func New(template string, formatter BodyFormatter, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		template:  template,
		formatter: formatter,
		now:       now,
	}
}

// ProjectContent substitutes every known {token} in the template with the
// value derived from the payload. Substitution is a single simultaneous
// pass over the original placeholder set: a strings.Replacer never rescans
// replaced text, so payload values containing {token}-shaped text are not
// re-substituted. Unknown tokens are left untouched.
func (r *Renderer) ProjectContent(p model.ProjectPayload) string {
	statusName := "Not Started"
	if p.State != nil && p.State.Name != "" {
		statusName = p.State.Name
	}

	leadName := "Unassigned"
	leadEmail := ""
	if p.Lead != nil {
		if p.Lead.Name != "" {
			leadName = p.Lead.Name
		}
		leadEmail = p.Lead.Email
	}

	initiativeLinked := "None"
	initiativeName := ""
	initiativeURL := ""
	if p.Initiative != nil {
		initiativeName = p.Initiative.Name
		initiativeURL = p.Initiative.URL
		switch {
		case initiativeName != "" && initiativeURL != "":
			initiativeLinked = fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`,
				html.EscapeString(initiativeURL), html.EscapeString(initiativeName))
		case initiativeName != "":
			initiativeLinked = html.EscapeString(initiativeName)
		}
	}

	replacer := strings.NewReplacer(
		"{id}", html.EscapeString(p.ID),
		"{name}", html.EscapeString(p.Name),
		"{description}", sanitizeRichText(p.Description),
		"{url}", html.EscapeString(p.URL),
		"{created_at}", formatDate(p.CreatedAt, ""),
		"{updated_at}", formatDate(p.UpdatedAt, ""),
		"{start_date}", formatDate(p.StartDate, "Not set"),
		"{target_date}", formatDate(p.TargetDate, "Not set"),
		"{health}", healthBadge(p.Health),
		"{status_name}", html.EscapeString(statusName),
		"{lead_name}", html.EscapeString(leadName),
		"{lead_email}", html.EscapeString(leadEmail),
		"{initiative_linked}", initiativeLinked,
		"{initiative_name}", html.EscapeString(initiativeName),
		"{initiative_url}", html.EscapeString(initiativeURL),
	)

	return replacer.Replace(r.template)
}
