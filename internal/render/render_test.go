package render_test

import (
	"strings"
	"testing"
	"time"

	"linear-memos-sync/internal/model"
	"linear-memos-sync/internal/render"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
}

func TestProjectContent(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		template := "{name} | {status_name} | {health} | {lead_name} ({lead_email}) | " +
			"{start_date} - {target_date} | {initiative_linked} | {description} | {url} | {id}"

		r := render.New(template, render.NewMarkdownFormatter(), fixedClock)

		p := model.ProjectPayload{
			ID:          "proj_123",
			Name:        "Launch",
			URL:         "https://linear.app/p1",
			Description: "A <b>bold</b> plan",
			StartDate:   "2024-03-05",
			TargetDate:  "2024-06-30",
			Health:      "atRisk",
			State:       &model.ProjectState{Name: "In Progress"},
			Lead:        &model.ProjectLead{Name: "Ada", Email: "ada@example.com"},
			Initiative:  &model.ProjectInitiative{Name: "Q2 Goals", URL: "https://linear.app/i1"},
		}

		out := r.ProjectContent(p)

		for _, want := range []string{
			"Launch",
			"In Progress",
			"At Risk",
			"#FBBF24",
			"Ada (ada@example.com)",
			"March 5, 2024 - June 30, 2024",
			`<a href="https://linear.app/i1" target="_blank">Q2 Goals</a>`,
			"A <b>bold</b> plan",
			"proj_123",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("defaults when optional fields absent", func(t *testing.T) {
		template := "{status_name}|{health}|{lead_name}|{lead_email}|{start_date}|{target_date}|" +
			"{created_at}|{updated_at}|{initiative_linked}|{initiative_name}|{initiative_url}|{description}"

		r := render.New(template, render.NewMarkdownFormatter(), fixedClock)

		out := r.ProjectContent(model.ProjectPayload{
			ID:   "p1",
			Name: "Bare",
			URL:  "https://linear.app/p1",
		})

		want := "Not Started|" +
			`<span style="display:inline-block; width:12px; height:12px; border-radius:50%; background-color:#34D399; margin-right:5px;"></span>On Track` +
			"|Unassigned||Not set|Not set|||None|||"
		if out != want {
			t.Errorf("defaults mismatch:\n got %q\nwant %q", out, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r := render.New("{name} {health} {start_date}", render.NewMarkdownFormatter(), fixedClock)
		p := model.ProjectPayload{ID: "p1", Name: "Launch", URL: "u", Health: "offTrack", StartDate: "2024-01-15"}

		first := r.ProjectContent(p)
		for i := 0; i < 10; i++ {
			if got := r.ProjectContent(p); got != first {
				t.Fatalf("render not deterministic: %q vs %q", got, first)
			}
		}
	})

	t.Run("substitution is single-pass", func(t *testing.T) {
		// A value containing a token-shaped string must not be re-substituted.
		r := render.New("{name} / {status_name}", render.NewMarkdownFormatter(), fixedClock)
		p := model.ProjectPayload{
			ID:    "p1",
			Name:  "{status_name}",
			URL:   "u",
			State: &model.ProjectState{Name: "Done"},
		}

		out := r.ProjectContent(p)
		if out != "{status_name} / Done" {
			t.Errorf("token collision: got %q", out)
		}
	})

	t.Run("unknown tokens untouched", func(t *testing.T) {
		r := render.New("{name} {mystery_token}", render.NewMarkdownFormatter(), fixedClock)
		out := r.ProjectContent(model.ProjectPayload{ID: "p1", Name: "X", URL: "u"})
		if out != "X {mystery_token}" {
			t.Errorf("expected unknown token preserved, got %q", out)
		}
	})

	t.Run("plain fields escaped", func(t *testing.T) {
		r := render.New("{name}", render.NewMarkdownFormatter(), fixedClock)
		out := r.ProjectContent(model.ProjectPayload{ID: "p1", Name: `<script>alert("x")</script>`, URL: "u"})
		if strings.Contains(out, "<script>") {
			t.Errorf("name not escaped: %q", out)
		}
	})

	t.Run("initiative name only", func(t *testing.T) {
		r := render.New("{initiative_linked}", render.NewMarkdownFormatter(), fixedClock)
		out := r.ProjectContent(model.ProjectPayload{
			ID: "p1", Name: "X", URL: "u",
			Initiative: &model.ProjectInitiative{Name: "Solo"},
		})
		if out != "Solo" {
			t.Errorf("expected plain name, got %q", out)
		}
	})

	t.Run("timestamps formatted as dates", func(t *testing.T) {
		r := render.New("{created_at}", render.NewMarkdownFormatter(), fixedClock)
		out := r.ProjectContent(model.ProjectPayload{
			ID: "p1", Name: "X", URL: "u",
			CreatedAt: "2024-03-05T09:30:00Z",
		})
		if out != "March 5, 2024" {
			t.Errorf("expected formatted date, got %q", out)
		}
	})

	t.Run("unparseable date passed through", func(t *testing.T) {
		r := render.New("{start_date}", render.NewMarkdownFormatter(), fixedClock)
		out := r.ProjectContent(model.ProjectPayload{
			ID: "p1", Name: "X", URL: "u",
			StartDate: "sometime soon",
		})
		if out != "sometime soon" {
			t.Errorf("expected raw value, got %q", out)
		}
	})
}
