package repository

// CreatePostOptions holds the parameters for creating a project post.
type CreatePostOptions struct {
	Title      string // Project name, used as the post heading
	Content    string // Rendered post body
	ProjectID  string // External Linear project id (raw; sanitized internally)
	ProjectURL string // Linear project URL
	Visibility string // "PRIVATE" or "PUBLIC" (default: "PUBLIC")
}

// AppendCommentOptions holds the parameters for appending an update comment.
type AppendCommentOptions struct {
	PostID  string // Memos resource name of the parent post
	Content string // Rendered HTML fragment
	Author  string // Attribution label shown with the comment
}
