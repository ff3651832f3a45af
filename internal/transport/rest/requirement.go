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
	"github.com/heartmarshall/prodboard-backend/internal/service/requirement"
)

// requirementService defines the minimal interface needed by
// RequirementHandler.
type requirementService interface {
	Create(ctx context.Context, actorID uuid.UUID, input requirement.CreateInput) (*domain.Requirement, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Requirement, error)
	List(ctx context.Context, input requirement.ListInput) ([]domain.Requirement, int, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input requirement.UpdateInput) (*domain.Requirement, error)
	ValidateRequirement(ctx context.Context, actorID, id uuid.UUID) (*domain.Requirement, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// RequirementHandler serves requirement REST endpoints.
type RequirementHandler struct {
	svc    requirementService
	paging config.PaginationConfig
	log    *slog.Logger
}

// NewRequirementHandler creates a RequirementHandler.
func NewRequirementHandler(svc requirementService, paging config.PaginationConfig, logger *slog.Logger) *RequirementHandler {
	return &RequirementHandler{svc: svc, paging: paging, log: logger.With("handler", "requirement")}
}

type createRequirementRequest struct {
	Type                   string     `json:"requirement_type"`
	UserStory              string     `json:"user_story"`
	AcceptanceCriteria     string     `json:"acceptance_criteria"`
	Priority               string     `json:"priority"`
	Complexity             string     `json:"complexity"`
	RelatedFeatures        []string   `json:"related_features"`
	TechnicalConstraints   string     `json:"technical_constraints"`
	SecurityConsiderations string     `json:"security_considerations"`
	ComplianceNeeds        string     `json:"compliance_needs"`
	MockupReferences       []string   `json:"mockup_references"`
	RoadmapID              *uuid.UUID `json:"roadmap_id"`
}

type updateRequirementRequest struct {
	Type                   *string    `json:"requirement_type"`
	UserStory              *string    `json:"user_story"`
	AcceptanceCriteria     *string    `json:"acceptance_criteria"`
	Priority               *string    `json:"priority"`
	Complexity             *string    `json:"complexity"`
	Status                 *string    `json:"status"`
	RelatedFeatures        *[]string  `json:"related_features"`
	TechnicalConstraints   *string    `json:"technical_constraints"`
	SecurityConsiderations *string    `json:"security_considerations"`
	ComplianceNeeds        *string    `json:"compliance_needs"`
	MockupReferences       *[]string  `json:"mockup_references"`
	RoadmapID              *uuid.UUID `json:"roadmap_id"`
	ClearRoadmap           bool       `json:"clear_roadmap"`
}

// Create handles POST /api/requirements.
func (h *RequirementHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionCreateRequirement)
	if !ok {
		return
	}

	var req createRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), caller.UserID, requirement.CreateInput{
		Type:                   domain.RequirementType(req.Type),
		UserStory:              req.UserStory,
		AcceptanceCriteria:     req.AcceptanceCriteria,
		Priority:               domain.Priority(req.Priority),
		Complexity:             domain.Complexity(req.Complexity),
		RelatedFeatures:        req.RelatedFeatures,
		TechnicalConstraints:   req.TechnicalConstraints,
		SecurityConsiderations: req.SecurityConsiderations,
		ComplianceNeeds:        req.ComplianceNeeds,
		MockupReferences:       req.MockupReferences,
		RoadmapID:              req.RoadmapID,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toRequirementResponse(created))
}

// List handles GET /api/requirements.
func (h *RequirementHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	roadmapID, err := queryUUID(r, "roadmap_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap_id")
		return
	}

	page := parsePage(r, h.paging)
	items, total, err := h.svc.List(r.Context(), requirement.ListInput{
		Status:    queryEnum[domain.RequirementStatus](r, "status"),
		Priority:  queryEnum[domain.Priority](r, "priority"),
		RoadmapID: roadmapID,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writePage(w, toRequirementResponses(items), page.Page, page.Limit, total)
}

// Get handles GET /api/requirements/{id}.
func (h *RequirementHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid requirement id")
		return
	}

	req, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRequirementResponse(req))
}

// Update handles PUT /api/requirements/{id}.
func (h *RequirementHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionEditRequirement)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid requirement id")
		return
	}

	var req updateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := requirement.UpdateInput{
		UserStory:              req.UserStory,
		AcceptanceCriteria:     req.AcceptanceCriteria,
		RelatedFeatures:        req.RelatedFeatures,
		TechnicalConstraints:   req.TechnicalConstraints,
		SecurityConsiderations: req.SecurityConsiderations,
		ComplianceNeeds:        req.ComplianceNeeds,
		MockupReferences:       req.MockupReferences,
		RoadmapID:              req.RoadmapID,
		ClearRoadmap:           req.ClearRoadmap,
	}
	if req.Type != nil {
		t := domain.RequirementType(*req.Type)
		input.Type = &t
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}
	if req.Complexity != nil {
		c := domain.Complexity(*req.Complexity)
		input.Complexity = &c
	}
	if req.Status != nil {
		st := domain.RequirementStatus(*req.Status)
		input.Status = &st
	}

	updated, err := h.svc.Update(r.Context(), caller.UserID, id, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRequirementResponse(updated))
}

// Validate handles POST /api/requirements/{id}/validate.
func (h *RequirementHandler) Validate(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionValidateRequirement)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid requirement id")
		return
	}

	validated, err := h.svc.ValidateRequirement(r.Context(), caller.UserID, id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRequirementResponse(validated))
}

// Delete handles DELETE /api/requirements/{id}.
func (h *RequirementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionDeleteRequirement)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid requirement id")
		return
	}

	if err := h.svc.Delete(r.Context(), caller.UserID, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "requirement deleted")
}
