package memos

import (
	"context"
	"fmt"
	"strings"

	"linear-memos-sync/internal/model"
	"linear-memos-sync/internal/project/repository"
	pkgLog "linear-memos-sync/pkg/log"
)

// projectTagPrefix namespaces the lookup tag carried by every mirrored
// post: "linear/<sanitized-project-id>".
const projectTagPrefix = "linear/"

// updateTag marks a comment as a Linear project update, distinguishing it
// from ordinary comments.
const updateTag = "linear/update"

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	l           pkgLog.Logger
}

// New creates a new Memos-backed content repository.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.ContentRepository {
	return &implRepository{
		client:      client,
		memoBaseURL: memoBaseURL,
		l:           l,
	}
}

func (r *implRepository) FindByProjectID(ctx context.Context, projectID string) (model.Post, bool, error) {
	tag := projectTagPrefix + repository.SanitizeProjectID(projectID)

	memos, err := r.client.ListMemos(ctx, tag, 1)
	if err != nil {
		r.l.Errorf(ctx, "memos repository: lookup for project %q failed: %v", projectID, err)
		return model.Post{}, false, err
	}
	if len(memos) == 0 {
		return model.Post{}, false, nil
	}

	post := r.memoToPost(&memos[0])
	post.ProjectID = projectID
	return post, true, nil
}

func (r *implRepository) CreatePost(ctx context.Context, opt repository.CreatePostOptions) (model.Post, error) {
	visibility := opt.Visibility
	if visibility == "" {
		visibility = "PUBLIC"
	}

	req := CreateMemoRequest{
		Content:    r.buildPostContent(opt),
		Visibility: visibility,
	}

	memo, err := r.client.CreateMemo(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create post: %v", err)
		return model.Post{}, err
	}

	post := r.memoToPost(memo)
	post.ProjectID = opt.ProjectID
	return post, nil
}

func (r *implRepository) AppendComment(ctx context.Context, opt repository.AppendCommentOptions) (model.Comment, error) {
	req := CreateMemoRequest{
		Content:    r.buildCommentContent(opt),
		Visibility: "PUBLIC",
	}

	memo, err := r.client.CreateMemoComment(ctx, opt.PostID, req)
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to append comment to %s: %v", opt.PostID, err)
		return model.Comment{}, err
	}

	return model.Comment{
		ID:         memo.Name,
		PostID:     opt.PostID,
		Content:    memo.Content,
		Author:     opt.Author,
		CreateTime: memo.CreateTime,
	}, nil
}

// buildPostContent assembles the memo body: title heading, rendered
// content, and the project lookup tag on its own line so Memos indexes it.
func (r *implRepository) buildPostContent(opt repository.CreatePostOptions) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(opt.Title)
	sb.WriteString("\n\n")
	sb.WriteString(opt.Content)
	sb.WriteString("\n\n#")
	sb.WriteString(projectTagPrefix + repository.SanitizeProjectID(opt.ProjectID))
	return sb.String()
}

// buildCommentContent prefixes the rendered fragment with the author label
// (Memos comments carry no author field) and appends the update tag.
func (r *implRepository) buildCommentContent(opt repository.AppendCommentOptions) string {
	var sb strings.Builder
	if opt.Author != "" {
		sb.WriteString("**")
		sb.WriteString(opt.Author)
		sb.WriteString("**\n\n")
	}
	sb.WriteString(opt.Content)
	sb.WriteString("\n\n#")
	sb.WriteString(updateTag)
	return sb.String()
}

// memoToPost converts a Memos API Memo object to the internal model.Post.
func (r *implRepository) memoToPost(m *Memo) model.Post {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	postURL := ""
	if uid != "" && r.memoBaseURL != "" {
		postURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	return model.Post{
		ID:         m.Name,
		UID:        uid,
		Content:    m.Content,
		PostURL:    postURL,
		Visibility: m.Visibility,
		CreateTime: m.CreateTime,
		UpdateTime: m.UpdateTime,
	}
}
