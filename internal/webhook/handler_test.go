package webhook_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"linear-memos-sync/internal/project"
	"linear-memos-sync/internal/webhook"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase records invocations and returns scripted results.
type mockUseCase struct {
	createCalls int
	updateCalls int
	createErr   error
	updateErr   error
	createOut   project.CreateProjectOutput
	updateOut   project.AppendUpdateOutput
}

func (m *mockUseCase) CreateProject(ctx context.Context, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	m.createCalls++
	if m.createErr != nil {
		return project.CreateProjectOutput{}, m.createErr
	}
	return m.createOut, nil
}

func (m *mockUseCase) AppendUpdate(ctx context.Context, input project.AppendUpdateInput) (project.AppendUpdateOutput, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return project.AppendUpdateOutput{}, m.updateErr
	}
	return m.updateOut, nil
}

const testSecret = "s3cret"

func newTestRouter(uc project.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := webhook.NewHandler(uc, webhook.SecurityConfig{
		Secret:          testSecret,
		RateLimitPerMin: 6000,
	}, &mockLogger{})
	r := gin.New()
	r.POST("/webhook", h.HandleLinearWebhook)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(webhook.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func respBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestHandleLinearWebhook(t *testing.T) {
	projectCreate := `{"type":"Project","action":"create","data":{"id":"P1","name":"Launch","url":"https://linear.app/p1"}}`
	projectUpdate := `{"type":"ProjectUpdate","action":"create","data":{"project":{"id":"P1"},"health":"atRisk","body":"**bold**"}}`

	t.Run("project creation succeeds", func(t *testing.T) {
		uc := &mockUseCase{createOut: project.CreateProjectOutput{PostID: "memos/1", PostURL: "http://memos.local/m/1"}}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectCreate, signBody(testSecret, []byte(projectCreate)))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.createCalls != 1 {
			t.Errorf("expected exactly one create call, got %d", uc.createCalls)
		}
		body := respBody(t, w)
		if body["success"] != true || body["post_id"] != "memos/1" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("duplicate project rejected", func(t *testing.T) {
		uc := &mockUseCase{createErr: project.ErrDuplicateProject}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectCreate, signBody(testSecret, []byte(projectCreate)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := respBody(t, w)
		if body["success"] != false || !strings.Contains(body["message"].(string), "already exists") {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("project update succeeds", func(t *testing.T) {
		uc := &mockUseCase{updateOut: project.AppendUpdateOutput{CommentID: "memos/2", PostID: "memos/1"}}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectUpdate, signBody(testSecret, []byte(projectUpdate)))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.updateCalls != 1 {
			t.Errorf("expected exactly one update call, got %d", uc.updateCalls)
		}
		body := respBody(t, w)
		if body["comment_id"] != "memos/2" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("update for unknown project returns 404", func(t *testing.T) {
		uc := &mockUseCase{updateErr: project.ErrProjectNotFound}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectUpdate, signBody(testSecret, []byte(projectUpdate)))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bad signature short-circuits", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectCreate, "deadbeef")

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if uc.createCalls != 0 || uc.updateCalls != 0 {
			t.Error("no usecase calls expected on bad signature")
		}
	})

	t.Run("missing signature short-circuits", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectCreate, "")

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if uc.createCalls != 0 {
			t.Error("no usecase calls expected on missing signature")
		}
	})

	t.Run("unsupported type rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)
		body := `{"type":"Unknown","action":"create","data":{}}`

		w := postWebhook(t, r, body, signBody(testSecret, []byte(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.createCalls != 0 || uc.updateCalls != 0 {
			t.Error("no usecase calls expected for unsupported type")
		}
		resp := respBody(t, w)
		if !strings.Contains(strings.ToLower(resp["message"].(string)), "unsupported") {
			t.Errorf("expected unsupported-type message, got %v", resp["message"])
		}
	})

	t.Run("update action is rejected", func(t *testing.T) {
		// Linear delivers project updates with action=create; a (Project,
		// update) pair is not a supported route.
		uc := &mockUseCase{}
		r := newTestRouter(uc)
		body := `{"type":"Project","action":"update","data":{"id":"P1"}}`

		w := postWebhook(t, r, body, signBody(testSecret, []byte(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed envelope rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)
		body := `{"type":"Project","action":"create"}`

		w := postWebhook(t, r, body, signBody(testSecret, []byte(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid JSON rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)
		body := `{not json`

		w := postWebhook(t, r, body, signBody(testSecret, []byte(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate limit is tracked per client", func(t *testing.T) {
		uc := &mockUseCase{createOut: project.CreateProjectOutput{PostID: "memos/1"}}
		gin.SetMode(gin.TestMode)
		h := webhook.NewHandler(uc, webhook.SecurityConfig{
			Secret:          testSecret,
			RateLimitPerMin: 6, // burst of one request
		}, &mockLogger{})
		r := gin.New()
		r.POST("/webhook", h.HandleLinearWebhook)

		send := func(clientIP string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(projectCreate)))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(webhook.SignatureHeader, signBody(testSecret, []byte(projectCreate)))
			req.Header.Set("X-Forwarded-For", clientIP)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			return w
		}

		if w := send("198.51.100.1"); w.Code != http.StatusCreated {
			t.Fatalf("first request from client should pass, got %d", w.Code)
		}
		if w := send("198.51.100.1"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request from same client should be limited, got %d", w.Code)
		}
		// A different client has its own budget.
		if w := send("198.51.100.2"); w.Code != http.StatusCreated {
			t.Fatalf("request from other client should pass, got %d", w.Code)
		}
	})

	t.Run("repository failure surfaces as 500", func(t *testing.T) {
		uc := &mockUseCase{createErr: context.DeadlineExceeded}
		r := newTestRouter(uc)

		w := postWebhook(t, r, projectCreate, signBody(testSecret, []byte(projectCreate)))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
