package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
	"github.com/heartmarshall/prodboard-backend/internal/service/export"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	RequirementsCSV(ctx context.Context, input export.RequirementsCSVInput) ([]byte, string, error)
	Roadmap(ctx context.Context, id uuid.UUID) (*export.RoadmapExport, error)
}

// ExportHandler serves export REST endpoints.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

type exportRequirementsRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type exportRoadmapRequest struct {
	RoadmapID uuid.UUID `json:"roadmap_id"`
}

type exportRoadmapResponse struct {
	Roadmap    roadmapResponse `json:"roadmap"`
	ExportPath string          `json:"export_path"`
}

// Requirements handles POST /api/export/requirements. The response is the
// CSV itself, served as a download rather than the JSON envelope.
func (h *ExportHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionExport); !ok {
		return
	}

	var req exportRequirementsRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	input := export.RequirementsCSVInput{}
	if req.Status != nil {
		st := domain.RequirementStatus(*req.Status)
		input.Status = &st
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	data, fileName, err := h.svc.RequirementsCSV(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// Roadmap handles POST /api/export/roadmap.
func (h *ExportHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionExport); !ok {
		return
	}

	var req exportRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RoadmapID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "roadmap_id required")
		return
	}

	result, err := h.svc.Roadmap(r.Context(), req.RoadmapID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, exportRoadmapResponse{
		Roadmap:    toRoadmapResponse(result.Roadmap),
		ExportPath: result.ExportPath,
	})
}
