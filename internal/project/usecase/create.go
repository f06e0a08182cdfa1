package usecase

import (
	"context"
	"fmt"

	"linear-memos-sync/internal/project"
	"linear-memos-sync/internal/project/repository"
)

// CreateProject mirrors a new Linear project as a Memos post. At most one
// post exists per project id; creation is rejected when one already does.
func (uc *implUseCase) CreateProject(ctx context.Context, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	p := input.Payload
	if !p.Validate() {
		return project.CreateProjectOutput{}, project.ErrInvalidProject
	}

	uc.l.Infof(ctx, "CreateProject: id=%s name=%q", p.ID, p.Name)

	// Dedup: the lookup-then-create sequence is not atomic; a concurrent
	// duplicate delivery for the same new project can race. Accepted for
	// the single-writer reference deployment.
	_, exists, err := uc.repo.FindByProjectID(ctx, p.ID)
	if err != nil {
		return project.CreateProjectOutput{}, fmt.Errorf("failed to look up project %s: %w", p.ID, err)
	}
	if exists {
		return project.CreateProjectOutput{}, project.ErrDuplicateProject
	}

	content := uc.renderer.ProjectContent(p)

	post, err := uc.repo.CreatePost(ctx, repository.CreatePostOptions{
		Title:      p.Name,
		Content:    content,
		ProjectID:  p.ID,
		ProjectURL: p.URL,
		Visibility: uc.visibility,
	})
	if err != nil {
		return project.CreateProjectOutput{}, fmt.Errorf("failed to create post for project %s: %w", p.ID, err)
	}

	uc.l.Infof(ctx, "CreateProject: created post %s for project %s", post.ID, p.ID)

	return project.CreateProjectOutput{
		PostID:  post.ID,
		PostURL: post.PostURL,
	}, nil
}
