package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
	"github.com/heartmarshall/prodboard-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	List(ctx context.Context, input activity.ListInput) ([]domain.ActivityRecord, int, error)
}

// ActivityHandler serves the activity log REST endpoint.
type ActivityHandler struct {
	svc    activityService
	paging config.PaginationConfig
	log    *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, paging config.PaginationConfig, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, paging: paging, log: logger.With("handler", "activity")}
}

// List handles GET /api/activity-logs.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	entityID, err := queryUUID(r, "entity_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entity_id")
		return
	}

	page := parsePage(r, h.paging)
	items, total, err := h.svc.List(r.Context(), activity.ListInput{
		EntityType: queryEnum[domain.EntityKind](r, "entity_type"),
		EntityID:   entityID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writePage(w, toActivityResponses(items), page.Page, page.Limit, total)
}
