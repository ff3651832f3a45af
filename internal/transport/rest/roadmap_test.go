package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/service/roadmap"
	"github.com/heartmarshall/prodboard-backend/pkg/ctxutil"
)

type roadmapServiceMock struct {
	CreateFunc  func(ctx context.Context, actorID uuid.UUID, input roadmap.CreateInput) (*domain.Roadmap, error)
	GetFunc     func(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
	ListFunc    func(ctx context.Context, input roadmap.ListInput) ([]domain.Roadmap, int, error)
	UpdateFunc  func(ctx context.Context, actorID, id uuid.UUID, input roadmap.UpdateInput) (*domain.Roadmap, error)
	ApproveFunc func(ctx context.Context, actorID, id uuid.UUID) (*domain.Roadmap, error)
	DeleteFunc  func(ctx context.Context, actorID, id uuid.UUID) error
}

func (m *roadmapServiceMock) Create(ctx context.Context, actorID uuid.UUID, input roadmap.CreateInput) (*domain.Roadmap, error) {
	return m.CreateFunc(ctx, actorID, input)
}

func (m *roadmapServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error) {
	return m.GetFunc(ctx, id)
}

func (m *roadmapServiceMock) List(ctx context.Context, input roadmap.ListInput) ([]domain.Roadmap, int, error) {
	return m.ListFunc(ctx, input)
}

func (m *roadmapServiceMock) Update(ctx context.Context, actorID, id uuid.UUID, input roadmap.UpdateInput) (*domain.Roadmap, error) {
	return m.UpdateFunc(ctx, actorID, id, input)
}

func (m *roadmapServiceMock) Approve(ctx context.Context, actorID, id uuid.UUID) (*domain.Roadmap, error) {
	return m.ApproveFunc(ctx, actorID, id)
}

func (m *roadmapServiceMock) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return m.DeleteFunc(ctx, actorID, id)
}

// envelope mirrors the response envelope for test assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	} `json:"error"`
	Pagination *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return env
}

func authedRequest(method, target string, body io.Reader, role domain.Role) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := ctxutil.WithIdentity(req.Context(), ctxutil.Identity{
		UserID: uuid.New(),
		Email:  "caller@example.com",
		Role:   role,
	})
	return req.WithContext(ctx)
}

func testRoadmapHandler(svc roadmapService) *RoadmapHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRoadmapHandler(svc, config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}, logger)
}

func TestRoadmapCreate_Success(t *testing.T) {
	t.Parallel()

	rmID := uuid.New()
	svc := &roadmapServiceMock{
		CreateFunc: func(_ context.Context, actorID uuid.UUID, input roadmap.CreateInput) (*domain.Roadmap, error) {
			if actorID == uuid.Nil {
				t.Error("actor ID should come from the authenticated identity")
			}
			if input.Name != "Q4 Launch" {
				t.Errorf("unexpected name %q", input.Name)
			}
			return &domain.Roadmap{
				ID:     rmID,
				RefID:  "RM-20260801-0001",
				Name:   input.Name,
				Status: domain.RoadmapStatusPlanning,
			}, nil
		},
	}
	h := testRoadmapHandler(svc)

	body := bytes.NewBufferString(`{"name":"Q4 Launch","timeframe":"2026-Q4","strategic_theme":"growth"}`)
	req := authedRequest(http.MethodPost, "/api/roadmaps", body, domain.RoleProductManager)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec.Body)
	if !env.Success {
		t.Error("expected success=true")
	}

	var data struct {
		ID    uuid.UUID `json:"id"`
		RefID string    `json:"ref_id"`
		Name  string    `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != rmID {
		t.Errorf("expected id %s, got %s", rmID, data.ID)
	}
	if data.RefID != "RM-20260801-0001" {
		t.Errorf("unexpected ref_id %q", data.RefID)
	}
}

func TestRoadmapCreate_ViewerForbidden(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		CreateFunc: func(context.Context, uuid.UUID, roadmap.CreateInput) (*domain.Roadmap, error) {
			t.Error("service should not be called for a forbidden role")
			return nil, nil
		},
	}
	h := testRoadmapHandler(svc)

	req := authedRequest(http.MethodPost, "/api/roadmaps", bytes.NewBufferString(`{"name":"x"}`), domain.RoleViewer)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec.Body)
	if env.Success {
		t.Error("expected success=false")
	}
}

func TestRoadmapCreate_AnonymousUnauthorized(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		CreateFunc: func(context.Context, uuid.UUID, roadmap.CreateInput) (*domain.Roadmap, error) {
			t.Error("service should not be called without authentication")
			return nil, nil
		},
	}
	h := testRoadmapHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/roadmaps", bytes.NewBufferString(`{"name":"x"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoadmapCreate_ValidationFields(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		CreateFunc: func(context.Context, uuid.UUID, roadmap.CreateInput) (*domain.Roadmap, error) {
			return nil, &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "name", Message: "required"},
			}}
		},
	}
	h := testRoadmapHandler(svc)

	req := authedRequest(http.MethodPost, "/api/roadmaps", bytes.NewBufferString(`{}`), domain.RoleAdmin)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec.Body)
	if env.Error == nil || len(env.Error.Fields) != 1 {
		t.Fatalf("expected one field error, got %+v", env.Error)
	}
	if env.Error.Fields[0].Field != "name" {
		t.Errorf("expected field error on name, got %q", env.Error.Fields[0].Field)
	}
}

func TestRoadmapList_Pagination(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		ListFunc: func(_ context.Context, input roadmap.ListInput) ([]domain.Roadmap, int, error) {
			if input.Limit != 5 {
				t.Errorf("expected limit 5, got %d", input.Limit)
			}
			if input.Offset != 5 {
				t.Errorf("expected offset 5, got %d", input.Offset)
			}
			if input.Status == nil || *input.Status != domain.RoadmapStatusPlanning {
				t.Errorf("expected status filter planning, got %v", input.Status)
			}
			return []domain.Roadmap{{ID: uuid.New()}, {ID: uuid.New()}}, 12, nil
		},
	}
	h := testRoadmapHandler(svc)

	req := authedRequest(http.MethodGet, "/api/roadmaps?page=2&limit=5&status=planning", nil, domain.RoleViewer)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec.Body)
	if env.Pagination == nil {
		t.Fatal("expected pagination in response")
	}
	if env.Pagination.Page != 2 || env.Pagination.Total != 12 || env.Pagination.TotalPages != 3 {
		t.Errorf("unexpected pagination %+v", env.Pagination)
	}
}

func TestRoadmapGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		GetFunc: func(context.Context, uuid.UUID) (*domain.Roadmap, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := testRoadmapHandler(svc)

	id := uuid.New()
	req := authedRequest(http.MethodGet, "/api/roadmaps/"+id.String(), nil, domain.RoleViewer)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRoadmapGet_MalformedID(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		GetFunc: func(context.Context, uuid.UUID) (*domain.Roadmap, error) {
			t.Error("service should not be called for a malformed id")
			return nil, nil
		},
	}
	h := testRoadmapHandler(svc)

	req := authedRequest(http.MethodGet, "/api/roadmaps/not-a-uuid", nil, domain.RoleViewer)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoadmapApprove_PassesCallerAndID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &roadmapServiceMock{
		ApproveFunc: func(_ context.Context, actorID, rmID uuid.UUID) (*domain.Roadmap, error) {
			if actorID == uuid.Nil {
				t.Error("actor ID should come from the authenticated identity")
			}
			if rmID != id {
				t.Errorf("expected roadmap id %s, got %s", id, rmID)
			}
			return &domain.Roadmap{ID: id, Status: domain.RoadmapStatusApproved}, nil
		},
	}
	h := testRoadmapHandler(svc)

	req := authedRequest(http.MethodPost, "/api/roadmaps/"+id.String()+"/approve", nil, domain.RoleAdmin)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Approve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Status string `json:"status"`
	}
	env := decodeEnvelope(t, rec.Body)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Status != "approved" {
		t.Errorf("expected status approved, got %q", data.Status)
	}
}

func TestRoadmapDelete_Message(t *testing.T) {
	t.Parallel()

	svc := &roadmapServiceMock{
		DeleteFunc: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
	}
	h := testRoadmapHandler(svc)

	id := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/roadmaps/"+id.String(), nil, domain.RoleAdmin)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec.Body)
	if env.Message != "roadmap deleted" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
