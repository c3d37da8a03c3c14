package http_server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	scheduler_port "pinstack-publish-service/internal/domain/ports/input/scheduler"
	http_server "pinstack-publish-service/internal/infrastructure/inbound/http"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	service_mock "pinstack-publish-service/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	secret = "test-secret"
	issuer = "pinstack-auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	router       *gin.Engine
	posts        *service_mock.Service
	ledger       *service_mock.Ledger
	orchestrator *service_mock.Orchestrator
	scheduler    *service_mock.DueScheduler
}

func newHarness(t *testing.T) *harness {
	log := logger.New("test")
	h := &harness{
		posts:        service_mock.NewService(t),
		ledger:       service_mock.NewLedger(t),
		orchestrator: service_mock.NewOrchestrator(t),
		scheduler:    service_mock.NewDueScheduler(t),
	}
	h.router = http_server.NewRouter(http_server.RouterDeps{
		Posts:        h.posts,
		Ledger:       h.ledger,
		Orchestrator: h.orchestrator,
		Scheduler:    h.scheduler,
		Auth:         middleware.Auth(secret, issuer, log),
		Log:          log,
		Metrics:      prometheus.NewPrometheusMetricsProvider(),
	})
	return h
}

func token(t *testing.T, userID, workspaceID int64, role model.Role) string {
	claims := middleware.Claims{
		WorkspaceID: workspaceID,
		Role:        string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func (h *harness) do(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

var editor = model.Actor{UserID: 7, WorkspaceID: 3, Role: model.RoleEditor}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth(t *testing.T) {
	h := newHarness(t)

	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		WorkspaceID:      3,
		Role:             "editor",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", Issuer: "someone-else"},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		WorkspaceID:      3,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", Issuer: issuer},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		WorkspaceID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		bearer string
	}{
		{name: "Missing token", bearer: ""},
		{name: "Garbage token", bearer: "not-a-jwt"},
		{name: "Foreign issuer", bearer: foreignIssuer},
		{name: "Wrong signing key", bearer: wrongKey},
		{name: "Expired", bearer: expired},
		{name: "Subject is not a user id", bearer: func() string {
			s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
				WorkspaceID:      3,
				RegisteredClaims: jwt.RegisteredClaims{Subject: "svc-bot", Issuer: issuer},
			}).SignedString([]byte(secret))
			return s
		}()},
		{name: "Missing workspace", bearer: token(t, 7, 0, model.RoleEditor)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(http.MethodGet, "/api/v1/posts/1", tt.bearer, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, http.StatusUnauthorized, decode(t, w).Code)
		})
	}
}

func TestCreatePost(t *testing.T) {
	h := newHarness(t)
	body := "Hello"

	h.posts.EXPECT().CreatePost(mock.Anything, editor, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
		return dto.WorkspaceID == 3 && dto.AuthorID == 7 && *dto.Body == body && len(dto.Targets) == 1
	})).Return(&model.PostDetailed{Post: &model.Post{ID: 11, WorkspaceID: 3, Status: model.PostStatusDraft}}, nil).Once()

	w := h.do(http.MethodPost, "/api/v1/posts", token(t, 7, 3, model.RoleEditor), map[string]any{
		"body":       body,
		"variations": map[string]string{"x": "Hello #x"},
		"targets":    []map[string]any{{"account_id": 5, "platform": "x"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var detailed model.PostDetailed
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &detailed))
	assert.Equal(t, int64(11), detailed.Post.ID)
}

func TestSetTargets_SingleLetterPlatform(t *testing.T) {
	h := newHarness(t)
	h.posts.EXPECT().SetTargets(mock.Anything, editor, int64(11), mock.MatchedBy(func(in []*model.TargetInput) bool {
		return len(in) == 2 && in[0].Platform == "x" && in[1].Platform == "linkedin"
	})).Return(&model.PostDetailed{Post: &model.Post{ID: 11, WorkspaceID: 3}}, nil).Once()

	w := h.do(http.MethodPut, "/api/v1/posts/11/targets", token(t, 7, 3, model.RoleEditor), map[string]any{
		"targets": []map[string]any{{"account_id": 5, "platform": "x"}, {"account_id": 6, "platform": "linkedin"}},
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreatePost_BadRequests(t *testing.T) {
	h := newHarness(t)
	bearer := token(t, 7, 3, model.RoleEditor)

	tests := []struct {
		name string
		body any
	}{
		{name: "Malformed JSON", body: `{"body":`},
		{name: "Invalid target", body: map[string]any{"targets": []map[string]any{{"account_id": 0, "platform": "x"}}}},
		{name: "Too many media", body: map[string]any{"media_items": make([]map[string]any, 11)}},
		{name: "Empty platform", body: map[string]any{"targets": []map[string]any{{"account_id": 5, "platform": ""}}}},
		{name: "Empty variation key", body: map[string]any{"variations": map[string]string{"": "Hello"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(http.MethodPost, "/api/v1/posts", bearer, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Invalid input", err: custom_errors.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "Forbidden", err: custom_errors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "Unauthenticated", err: custom_errors.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "Post not found", err: custom_errors.ErrPostNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "Precondition",
			err:        custom_errors.NewTransitionError("draft", "submitted", custom_errors.ErrContentMissing),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Illegal transition",
			err:        custom_errors.NewTransitionError("published", "submitted", nil),
			wantStatus: http.StatusConflict,
		},
		{name: "Collaborator down", err: custom_errors.ErrExternalServiceError, wantStatus: http.StatusBadGateway},
		{name: "Unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.posts.EXPECT().Submit(mock.Anything, editor, int64(9)).Return(nil, tt.err).Once()

			w := h.do(http.MethodPost, "/api/v1/posts/9/submit", token(t, 7, 3, model.RoleEditor), nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus, decode(t, w).Code)
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/api/v1/posts/abc", token(t, 7, 3, model.RoleEditor), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/v1/posts/-1", token(t, 7, 3, model.RoleEditor), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPosts(t *testing.T) {
	h := newHarness(t)
	bearer := token(t, 7, 3, model.RoleEditor)

	h.posts.EXPECT().ListPosts(mock.Anything, editor, mock.MatchedBy(func(f *model.PostFilters) bool {
		return f.Status != nil && *f.Status == model.PostStatusScheduled && *f.Limit == 20 && *f.Offset == 40
	})).Return([]*model.Post{{ID: 1}}, 41, nil).Once()

	w := h.do(http.MethodGet, "/api/v1/posts?status=scheduled&limit=20&offset=40", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(http.MethodGet, "/api/v1/posts?status=archived", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/v1/posts?limit=500", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedule(t *testing.T) {
	h := newHarness(t)
	bearer := token(t, 8, 3, model.RoleApprover)
	approver := model.Actor{UserID: 8, WorkspaceID: 3, Role: model.RoleApprover}
	at := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)

	h.posts.EXPECT().Schedule(mock.Anything, approver, int64(4), mock.MatchedBy(func(dto model.ScheduleDTO) bool {
		return dto.At.Equal(at) && dto.Timezone == "Europe/Berlin"
	})).
		Return(&model.Post{ID: 4, Status: model.PostStatusScheduled}, nil).Once()

	w := h.do(http.MethodPost, "/api/v1/posts/4/schedule", bearer, map[string]any{"at": at, "timezone": "Europe/Berlin"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(http.MethodPost, "/api/v1/posts/4/reschedule", bearer, map[string]any{"at": at})
	assert.Equal(t, http.StatusBadRequest, w.Code, "timezone is required")
}

func TestApprovals(t *testing.T) {
	h := newHarness(t)
	bearer := token(t, 8, 3, model.RoleApprover)
	approver := model.Actor{UserID: 8, WorkspaceID: 3, Role: model.RoleApprover}

	h.ledger.EXPECT().Approve(mock.Anything, approver, int64(4), (*string)(nil)).
		Return(&model.ApprovalDecision{ID: 1, PostID: 4, Decision: model.DecisionApproved}, nil).Once()
	w := h.do(http.MethodPost, "/api/v1/posts/4/approve", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(http.MethodPost, "/api/v1/posts/4/reject", bearer, map[string]any{"comment": "no"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "reason is required", decode(t, w).Message)

	h.ledger.EXPECT().Reject(mock.Anything, approver, int64(4), model.RejectDTO{Reason: "off brand"}).
		Return(&model.ApprovalDecision{ID: 2, PostID: 4, Decision: model.DecisionRejected}, nil).Once()
	w = h.do(http.MethodPost, "/api/v1/posts/4/reject", bearer, map[string]any{"reason": "off brand"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	h.ledger.EXPECT().History(mock.Anything, approver, int64(4)).Return([]*model.ApprovalDecision{}, nil).Once()
	w = h.do(http.MethodGet, "/api/v1/posts/4/approvals", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublishRoutes(t *testing.T) {
	h := newHarness(t)
	bearer := token(t, 8, 3, model.RoleApprover)
	approver := model.Actor{UserID: 8, WorkspaceID: 3, Role: model.RoleApprover}

	h.orchestrator.EXPECT().PublishNow(mock.Anything, approver, int64(4)).Return(&model.Post{ID: 4, Status: model.PostStatusPublished}, nil).Once()
	w := h.do(http.MethodPost, "/api/v1/posts/4/publish", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	h.orchestrator.EXPECT().RetryFailed(mock.Anything, approver, int64(4)).
		Return(nil, custom_errors.NewTransitionError("published", "publishing", custom_errors.ErrNoFailedTargets)).Once()
	w = h.do(http.MethodPost, "/api/v1/posts/4/retry", bearer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	h.orchestrator.EXPECT().UpdatePostStatusFromTargets(mock.Anything, int64(4)).Return(&model.Post{ID: 4}, nil).Once()
	w = h.do(http.MethodPost, "/api/v1/posts/4/refresh-status", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	h.orchestrator.EXPECT().ListFailures(mock.Anything, approver, int64(4)).Return([]*model.PublishFailure{{ID: 1}}, nil).Once()
	w = h.do(http.MethodGet, "/api/v1/posts/4/failures", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOperatorRoutes(t *testing.T) {
	h := newHarness(t)
	admin := token(t, 1, 3, model.RoleAdmin)

	w := h.do(http.MethodPost, "/api/v1/scheduler/run", token(t, 7, 3, model.RoleEditor), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	h.scheduler.EXPECT().RunDueBatch(mock.Anything).Return(&scheduler_port.BatchReport{Due: 2, Dispatched: []int64{1, 2}, Failed: []int64{}}, nil).Once()
	w = h.do(http.MethodPost, "/api/v1/scheduler/run", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report scheduler_port.BatchReport
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))
	assert.Equal(t, []int64{1, 2}, report.Dispatched)

	h.orchestrator.EXPECT().ProcessTarget(mock.Anything, int64(12)).Return(nil, custom_errors.ErrTargetNotPending).Once()
	w = h.do(http.MethodPost, "/api/v1/targets/12/process", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPut, "/api/v1/targets/12/metrics", admin, `{"likes":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	h.orchestrator.EXPECT().UpdateTargetMetrics(mock.Anything, int64(12), mock.Anything).Return(nil).Once()
	w = h.do(http.MethodPut, "/api/v1/targets/12/metrics", admin, `{"likes":3}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
