package project

import "linear-memos-sync/internal/model"

// CreateProjectInput is the input for mirroring a new project.
type CreateProjectInput struct {
	Payload model.ProjectPayload
}

// CreateProjectOutput is the result of a successful project creation.
type CreateProjectOutput struct {
	PostID  string // Memos resource name of the created post
	PostURL string // Deep link to the post (may be empty)
}

// AppendUpdateInput is the input for appending a project update.
type AppendUpdateInput struct {
	Payload model.ProjectUpdatePayload
}

// AppendUpdateOutput is the result of a successfully appended update.
type AppendUpdateOutput struct {
	CommentID string // Memos resource name of the comment
	PostID    string // Resource name of the parent post
}
