package usecase

import (
	"linear-memos-sync/internal/project/repository"
	"linear-memos-sync/internal/render"
	pkgLog "linear-memos-sync/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.ContentRepository
	renderer   *render.Renderer
	visibility string // visibility for created posts
}

// New creates a new project UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.ContentRepository,
	renderer *render.Renderer,
	visibility string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		renderer:   renderer,
		visibility: visibility,
	}
}
