package render

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// BodyFormatter converts free-form update body text into safe HTML. The
// converter choice stays behind this interface so it never leaks into the
// handler or usecase contracts.
type BodyFormatter interface {
	Format(text string) string
}

// MarkdownFormatter is the default BodyFormatter: markdown via blackfriday,
// then allow-list sanitization.
type MarkdownFormatter struct {
	policy *bluemonday.Policy
}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{policy: bluemonday.UGCPolicy()}
}

func (f *MarkdownFormatter) Format(text string) string {
	rendered := blackfriday.Run([]byte(text))
	return strings.TrimSpace(f.policy.Sanitize(string(rendered)))
}
