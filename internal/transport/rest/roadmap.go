package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
	"github.com/heartmarshall/prodboard-backend/internal/service/roadmap"
)

// roadmapService defines the minimal interface needed by RoadmapHandler.
type roadmapService interface {
	Create(ctx context.Context, actorID uuid.UUID, input roadmap.CreateInput) (*domain.Roadmap, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
	List(ctx context.Context, input roadmap.ListInput) ([]domain.Roadmap, int, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input roadmap.UpdateInput) (*domain.Roadmap, error)
	Approve(ctx context.Context, actorID, id uuid.UUID) (*domain.Roadmap, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// RoadmapHandler serves roadmap REST endpoints.
type RoadmapHandler struct {
	svc    roadmapService
	paging config.PaginationConfig
	log    *slog.Logger
}

// NewRoadmapHandler creates a RoadmapHandler.
func NewRoadmapHandler(svc roadmapService, paging config.PaginationConfig, logger *slog.Logger) *RoadmapHandler {
	return &RoadmapHandler{svc: svc, paging: paging, log: logger.With("handler", "roadmap")}
}

type createRoadmapRequest struct {
	Name                  string         `json:"name"`
	Timeframe             string         `json:"timeframe"`
	StrategicTheme        string         `json:"strategic_theme"`
	NextReviewDate        string         `json:"next_review_date"`
	StakeholderVisibility string         `json:"stakeholder_visibility"`
	Dependencies          []string       `json:"dependencies"`
	RiskAssessment        string         `json:"risk_assessment"`
	SuccessMetrics        map[string]any `json:"success_metrics"`
	PresentationVersion   string         `json:"presentation_version"`
}

type updateRoadmapRequest struct {
	Name                  *string        `json:"name"`
	Timeframe             *string        `json:"timeframe"`
	StrategicTheme        *string        `json:"strategic_theme"`
	NextReviewDate        *string        `json:"next_review_date"`
	StakeholderVisibility *string        `json:"stakeholder_visibility"`
	Status                *string        `json:"status"`
	Dependencies          *[]string      `json:"dependencies"`
	RiskAssessment        *string        `json:"risk_assessment"`
	SuccessMetrics        map[string]any `json:"success_metrics"`
	PresentationVersion   *string        `json:"presentation_version"`
}

// Create handles POST /api/roadmaps.
func (h *RoadmapHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := require(w, r, permissions.ActionCreateRoadmap)
	if !ok {
		return
	}

	var req createRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviewDate, err := parseDate(req.NextReviewDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid next_review_date")
		return
	}

	created, err := h.svc.Create(r.Context(), id.UserID, roadmap.CreateInput{
		Name:                  req.Name,
		Timeframe:             req.Timeframe,
		StrategicTheme:        req.StrategicTheme,
		NextReviewDate:        reviewDate,
		StakeholderVisibility: domain.Visibility(req.StakeholderVisibility),
		Dependencies:          req.Dependencies,
		RiskAssessment:        req.RiskAssessment,
		SuccessMetrics:        req.SuccessMetrics,
		PresentationVersion:   req.PresentationVersion,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toRoadmapResponse(created))
}

// List handles GET /api/roadmaps.
func (h *RoadmapHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	page := parsePage(r, h.paging)
	items, total, err := h.svc.List(r.Context(), roadmap.ListInput{
		Status: queryEnum[domain.RoadmapStatus](r, "status"),
		Theme:  queryStr(r, "theme"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writePage(w, toRoadmapResponses(items), page.Page, page.Limit, total)
}

// Get handles GET /api/roadmaps/{id}.
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	rm, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRoadmapResponse(rm))
}

// Update handles PUT /api/roadmaps/{id}.
func (h *RoadmapHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionEditRoadmap)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	var req updateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := roadmap.UpdateInput{
		Name:                  req.Name,
		Timeframe:             req.Timeframe,
		StrategicTheme:        req.StrategicTheme,
		Dependencies:          req.Dependencies,
		RiskAssessment:        req.RiskAssessment,
		SuccessMetrics:        req.SuccessMetrics,
		PresentationVersion:   req.PresentationVersion,
	}
	if req.NextReviewDate != nil {
		reviewDate, err := parseDate(*req.NextReviewDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid next_review_date")
			return
		}
		input.NextReviewDate = reviewDate
	}
	if req.StakeholderVisibility != nil {
		v := domain.Visibility(*req.StakeholderVisibility)
		input.StakeholderVisibility = &v
	}
	if req.Status != nil {
		st := domain.RoadmapStatus(*req.Status)
		input.Status = &st
	}

	updated, err := h.svc.Update(r.Context(), caller.UserID, id, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRoadmapResponse(updated))
}

// Approve handles POST /api/roadmaps/{id}/approve.
func (h *RoadmapHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionApproveRoadmap)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	approved, err := h.svc.Approve(r.Context(), caller.UserID, id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRoadmapResponse(approved))
}

// Delete handles DELETE /api/roadmaps/{id}.
func (h *RoadmapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionDeleteRoadmap)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	if err := h.svc.Delete(r.Context(), caller.UserID, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "roadmap deleted")
}
