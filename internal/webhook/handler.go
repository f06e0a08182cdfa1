package webhook

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"linear-memos-sync/internal/model"
	"linear-memos-sync/internal/project"
	pkgResponse "linear-memos-sync/pkg/response"
)

// maxBodySize caps webhook bodies at 1 MB.
const maxBodySize = 1 << 20

// HandleLinearWebhook processes Linear webhook events: verify, validate,
// route by (type, action), respond. Each request is independent and runs to
// completion synchronously; retries are the sender's responsibility.
func (h *Handler) HandleLinearWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook rejected by IP allow-list: %v", err)
		pkgResponse.Forbidden(c, "forbidden")
		return
	}

	// Read raw body; the signature covers these exact bytes
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.BadRequest(c, "failed to read request body")
		return
	}

	// Verify signature; only the first value of a multi-value header counts
	signature := ""
	if values := c.Request.Header.Values(SignatureHeader); len(values) > 0 {
		signature = values[0]
	}
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		pkgResponse.Unauthorized(c, "Invalid webhook signature")
		return
	}

	// Check rate limit per client IP
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		pkgResponse.TooManyRequests(c, "rate limit exceeded")
		return
	}

	// Parse and validate the envelope
	envelope, err := h.parser.ParseEnvelope(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse webhook envelope: %v", err)
		pkgResponse.BadRequest(c, "Invalid webhook data")
		return
	}
	if !envelope.Validate() {
		h.l.Warnf(ctx, "Malformed webhook envelope: type=%q action=%q", envelope.Type, envelope.Action)
		pkgResponse.BadRequest(c, "Invalid webhook data")
		return
	}

	// Route by (type, action). Linear delivers project updates with
	// action=create: a new update record is created.
	switch {
	case envelope.Type == model.EventTypeProject && envelope.Action == model.ActionCreate:
		h.handleProjectCreation(c, envelope.Data)
	case envelope.Type == model.EventTypeProjectUpdate && envelope.Action == model.ActionCreate:
		h.handleProjectUpdate(c, envelope.Data)
	default:
		h.l.Infof(ctx, "Unsupported webhook: type=%s action=%s", envelope.Type, envelope.Action)
		pkgResponse.BadRequest(c, "Unsupported webhook type or action")
	}
}

// handleProjectCreation routes a (Project, create) event to the usecase and
// maps domain errors onto the response contract.
func (h *Handler) handleProjectCreation(c *gin.Context, data json.RawMessage) {
	ctx := c.Request.Context()

	payload, err := h.parser.ParseProject(data)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse project payload: %v", err)
		pkgResponse.BadRequest(c, "Invalid project data")
		return
	}

	output, err := h.projectUC.CreateProject(ctx, project.CreateProjectInput{Payload: *payload})
	if err != nil {
		switch {
		case errors.Is(err, project.ErrInvalidProject):
			pkgResponse.BadRequest(c, "Invalid project data")
		case errors.Is(err, project.ErrDuplicateProject):
			pkgResponse.BadRequest(c, "Project already exists")
		default:
			h.l.Errorf(ctx, "Project creation failed: %v", err)
			pkgResponse.InternalError(c, "Error creating project: "+err.Error())
		}
		return
	}

	pkgResponse.Created(c, "Project created successfully", gin.H{
		"post_id":  output.PostID,
		"post_url": output.PostURL,
	})
}

// handleProjectUpdate routes a (ProjectUpdate, create) event to the usecase.
func (h *Handler) handleProjectUpdate(c *gin.Context, data json.RawMessage) {
	ctx := c.Request.Context()

	payload, err := h.parser.ParseProjectUpdate(data)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse project update payload: %v", err)
		pkgResponse.BadRequest(c, "Invalid project update data")
		return
	}

	output, err := h.projectUC.AppendUpdate(ctx, project.AppendUpdateInput{Payload: *payload})
	if err != nil {
		switch {
		case errors.Is(err, project.ErrInvalidProjectUpdate):
			pkgResponse.BadRequest(c, "Invalid project update data")
		case errors.Is(err, project.ErrProjectNotFound):
			pkgResponse.NotFound(c, "Project not found")
		default:
			h.l.Errorf(ctx, "Project update failed: %v", err)
			pkgResponse.InternalError(c, "Error processing project update: "+err.Error())
		}
		return
	}

	pkgResponse.Created(c, "Project update added as comment", gin.H{
		"comment_id": output.CommentID,
		"post_id":    output.PostID,
	})
}
