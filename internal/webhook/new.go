package webhook

import (
	"linear-memos-sync/internal/project"
	pkgLog "linear-memos-sync/pkg/log"
)

type Handler struct {
	projectUC project.UseCase
	security  *SecurityValidator
	parser    *LinearWebhookParser
	l         pkgLog.Logger
}

func NewHandler(
	projectUC project.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		projectUC: projectUC,
		security:  NewSecurityValidator(securityConfig),
		parser:    NewLinearParser(),
		l:         l,
	}
}
