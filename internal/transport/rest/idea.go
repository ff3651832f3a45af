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
	"github.com/heartmarshall/prodboard-backend/internal/service/idea"
)

// ideaService defines the minimal interface needed by IdeaHandler.
type ideaService interface {
	Submit(ctx context.Context, actorID uuid.UUID, input idea.SubmitInput) (*domain.Idea, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, input idea.ListInput) ([]domain.Idea, int, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input idea.UpdateInput) (*domain.Idea, error)
	Triage(ctx context.Context, actorID, id uuid.UUID, input idea.TriageInput) (*domain.Idea, error)
	Promote(ctx context.Context, actorID, id uuid.UUID) (*domain.Requirement, *domain.Idea, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// IdeaHandler serves idea REST endpoints.
type IdeaHandler struct {
	svc    ideaService
	paging config.PaginationConfig
	log    *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, paging config.PaginationConfig, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, paging: paging, log: logger.With("handler", "idea")}
}

type submitIdeaRequest struct {
	Name                  string   `json:"name"`
	ProblemStatement      string   `json:"problem_statement"`
	TargetCustomer        string   `json:"target_customer"`
	EstimatedImpact       string   `json:"estimated_impact"`
	Feasibility           string   `json:"feasibility"`
	AlignmentWithStrategy string   `json:"alignment_with_strategy"`
	CompetitiveAdvantage  string   `json:"competitive_advantage"`
	RelatedProducts       []string `json:"related_products"`
}

type updateIdeaRequest struct {
	Name                  *string   `json:"name"`
	ProblemStatement      *string   `json:"problem_statement"`
	TargetCustomer        *string   `json:"target_customer"`
	EstimatedImpact       *string   `json:"estimated_impact"`
	Feasibility           *string   `json:"feasibility"`
	AlignmentWithStrategy *string   `json:"alignment_with_strategy"`
	CompetitiveAdvantage  *string   `json:"competitive_advantage"`
	RelatedProducts       *[]string `json:"related_products"`
	NextSteps             *string   `json:"next_steps"`
}

type triageIdeaRequest struct {
	Status    string  `json:"triage_status"`
	NextSteps *string `json:"next_steps"`
}

type promoteIdeaResponse struct {
	Idea        ideaResponse        `json:"idea"`
	Requirement requirementResponse `json:"requirement"`
}

// Submit handles POST /api/ideas.
func (h *IdeaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionSubmitIdea)
	if !ok {
		return
	}

	var req submitIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Submit(r.Context(), caller.UserID, idea.SubmitInput{
		Name:                  req.Name,
		ProblemStatement:      req.ProblemStatement,
		TargetCustomer:        req.TargetCustomer,
		EstimatedImpact:       domain.ImpactLevel(req.EstimatedImpact),
		Feasibility:           domain.ImpactLevel(req.Feasibility),
		AlignmentWithStrategy: req.AlignmentWithStrategy,
		CompetitiveAdvantage:  req.CompetitiveAdvantage,
		RelatedProducts:       req.RelatedProducts,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toIdeaResponse(created))
}

// List handles GET /api/ideas.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	page := parsePage(r, h.paging)
	items, total, err := h.svc.List(r.Context(), idea.ListInput{
		TriageStatus: queryEnum[domain.TriageStatus](r, "triage_status"),
		Impact:       queryEnum[domain.ImpactLevel](r, "impact"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writePage(w, toIdeaResponses(items), page.Page, page.Limit, total)
}

// Get handles GET /api/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	in, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toIdeaResponse(in))
}

// Update handles PUT /api/ideas/{id}.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionEditIdea)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var req updateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := idea.UpdateInput{
		Name:                  req.Name,
		ProblemStatement:      req.ProblemStatement,
		TargetCustomer:        req.TargetCustomer,
		AlignmentWithStrategy: req.AlignmentWithStrategy,
		CompetitiveAdvantage:  req.CompetitiveAdvantage,
		RelatedProducts:       req.RelatedProducts,
		NextSteps:             req.NextSteps,
	}
	if req.EstimatedImpact != nil {
		v := domain.ImpactLevel(*req.EstimatedImpact)
		input.EstimatedImpact = &v
	}
	if req.Feasibility != nil {
		v := domain.ImpactLevel(*req.Feasibility)
		input.Feasibility = &v
	}

	updated, err := h.svc.Update(r.Context(), caller.UserID, id, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toIdeaResponse(updated))
}

// Triage handles POST /api/ideas/{id}/triage.
func (h *IdeaHandler) Triage(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionTriageIdea)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var req triageIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	triaged, err := h.svc.Triage(r.Context(), caller.UserID, id, idea.TriageInput{
		Status:    domain.TriageStatus(req.Status),
		NextSteps: req.NextSteps,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toIdeaResponse(triaged))
}

// Promote handles POST /api/ideas/{id}/promote.
func (h *IdeaHandler) Promote(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionPromoteIdea)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	req, promoted, err := h.svc.Promote(r.Context(), caller.UserID, id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, promoteIdeaResponse{
		Idea:        toIdeaResponse(promoted),
		Requirement: toRequirementResponse(req),
	})
}

// Delete handles DELETE /api/ideas/{id}.
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionDeleteIdea)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	if err := h.svc.Delete(r.Context(), caller.UserID, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "idea deleted")
}
