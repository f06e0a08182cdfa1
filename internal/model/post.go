package model

// Post is a Linear project mirrored into Memos.
type Post struct {
	ID         string // Memos resource name (e.g. "memos/123")
	UID        string // Memos short UID
	ProjectID  string // External Linear project id
	Content    string // Full rendered content
	PostURL    string // Deep link to the Memos web UI
	Visibility string // "PRIVATE" or "PUBLIC"
	CreateTime string // RFC3339 creation time string from Memos API
	UpdateTime string // RFC3339 last updated time string from Memos API
}

// Comment is one project update appended to a Post.
type Comment struct {
	ID         string // Memos resource name of the comment memo
	PostID     string // Resource name of the parent post
	Content    string // Rendered HTML fragment
	Author     string // Attribution label
	CreateTime string
}
