package repository

import (
	"context"

	"linear-memos-sync/internal/model"
)

// ContentRepository is the interface for the external content store. The
// lookup key is always the sanitized external project id — the same key
// for creation-time dedup and update-time resolution.
type ContentRepository interface {
	// FindByProjectID looks up the post mirroring the given project id.
	// The boolean reports whether a post was found.
	FindByProjectID(ctx context.Context, projectID string) (model.Post, bool, error)

	// CreatePost creates the post for a project. Callers pre-check
	// duplicates via FindByProjectID; the store has no atomic
	// create-if-absent.
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.Post, error)

	// AppendComment appends an update comment to a post. Comments are
	// auto-approved (immediately visible).
	AppendComment(ctx context.Context, opt AppendCommentOptions) (model.Comment, error)
}
