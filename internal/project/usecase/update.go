package usecase

import (
	"context"
	"fmt"

	"linear-memos-sync/internal/project"
	"linear-memos-sync/internal/project/repository"
)

// AppendUpdate appends a Linear project update as a comment on the post
// mirroring the referenced project. It never creates a new post.
func (uc *implUseCase) AppendUpdate(ctx context.Context, input project.AppendUpdateInput) (project.AppendUpdateOutput, error) {
	u := input.Payload
	if !u.Validate() {
		return project.AppendUpdateOutput{}, project.ErrInvalidProjectUpdate
	}

	uc.l.Infof(ctx, "AppendUpdate: project=%s", u.Project.ID)

	post, exists, err := uc.repo.FindByProjectID(ctx, u.Project.ID)
	if err != nil {
		return project.AppendUpdateOutput{}, fmt.Errorf("failed to look up project %s: %w", u.Project.ID, err)
	}
	if !exists {
		return project.AppendUpdateOutput{}, project.ErrProjectNotFound
	}

	comment, err := uc.repo.AppendComment(ctx, repository.AppendCommentOptions{
		PostID:  post.ID,
		Content: uc.renderer.UpdateComment(u),
		Author:  u.Author(),
	})
	if err != nil {
		return project.AppendUpdateOutput{}, fmt.Errorf("failed to append comment for project %s: %w", u.Project.ID, err)
	}

	uc.l.Infof(ctx, "AppendUpdate: added comment %s to post %s", comment.ID, post.ID)

	return project.AppendUpdateOutput{
		CommentID: comment.ID,
		PostID:    post.ID,
	}, nil
}
