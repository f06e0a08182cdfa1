package project

import "context"

// UseCase defines the business logic interface for the project domain.
type UseCase interface {
	// CreateProject mirrors a newly created Linear project as a Memos post.
	// Fails with ErrDuplicateProject when a post for the project id exists.
	CreateProject(ctx context.Context, input CreateProjectInput) (CreateProjectOutput, error)

	// AppendUpdate appends a Linear project update as a comment on the
	// existing post. Fails with ErrProjectNotFound when no post exists.
	AppendUpdate(ctx context.Context, input AppendUpdateInput) (AppendUpdateOutput, error)
}
