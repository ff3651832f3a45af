package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// notificationService defines the minimal interface needed by
// NotificationHandler.
type notificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// NotificationHandler serves notification REST endpoints. All operations are
// scoped to the authenticated caller.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationListResponse struct {
	Items       []notificationResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

// List handles GET /api/notifications?unread=true.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	items, unread, err := h.svc.List(r.Context(), caller.UserID, unreadOnly)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, notificationListResponse{
		Items:       toNotificationResponses(items),
		UnreadCount: unread,
	})
}

// MarkRead handles PUT /api/notifications/{id}/read. Another user's
// notification reports 404, not 403, to avoid confirming its existence.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.svc.MarkRead(r.Context(), id, caller.UserID); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "notification marked read")
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	n, err := h.svc.MarkAllRead(r.Context(), caller.UserID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, map[string]int{"marked_read": n})
}
