package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
	"github.com/heartmarshall/prodboard-backend/internal/service/collab"
)

// maxUploadBytes caps a single attachment upload.
const maxUploadBytes = 10 << 20

// collabService defines the minimal interface needed by CollabHandler.
type collabService interface {
	Comment(ctx context.Context, actorID uuid.UUID, input collab.CommentInput) (*domain.Comment, error)
	Comments(ctx context.Context, ref domain.EntityRef) ([]domain.Comment, error)
	Attach(ctx context.Context, actorID uuid.UUID, input collab.AttachmentInput) (*domain.Attachment, error)
	Attachments(ctx context.Context, ref domain.EntityRef) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, actorID uuid.UUID, actorRole domain.Role, id uuid.UUID) error
}

// CollabHandler serves comment and attachment REST endpoints.
type CollabHandler struct {
	svc     collabService
	uploads config.UploadsConfig
	log     *slog.Logger
}

// NewCollabHandler creates a CollabHandler.
func NewCollabHandler(svc collabService, uploads config.UploadsConfig, logger *slog.Logger) *CollabHandler {
	return &CollabHandler{svc: svc, uploads: uploads, log: logger.With("handler", "collab")}
}

type createCommentRequest struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	Content    string    `json:"content"`
}

// entityRefFromQuery reads entity_type and entity_id query parameters.
func entityRefFromQuery(r *http.Request) (domain.EntityRef, error) {
	ref := domain.EntityRef{Kind: domain.EntityKind(r.URL.Query().Get("entity_type"))}
	rawID := r.URL.Query().Get("entity_id")
	if rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return domain.EntityRef{}, fmt.Errorf("invalid entity_id")
		}
		ref.ID = id
	}
	return ref, nil
}

// CreateComment handles POST /api/comments.
func (h *CollabHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionComment)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Comment(r.Context(), caller.UserID, collab.CommentInput{
		Entity:  domain.EntityRef{Kind: domain.EntityKind(req.EntityType), ID: req.EntityID},
		Content: req.Content,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toCommentResponse(created))
}

// ListComments handles GET /api/comments?entity_type=...&entity_id=...
func (h *CollabHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	ref, err := entityRefFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.Comments(r.Context(), ref)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toCommentResponses(items))
}

// ListAttachments handles GET /api/attachments?entity_type=...&entity_id=...
func (h *CollabHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionView); !ok {
		return
	}

	ref, err := entityRefFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.Attachments(r.Context(), ref)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toAttachmentResponses(items))
}

// Upload handles POST /api/attachments/upload (multipart form). The file
// lands in the uploads directory under a collision-free name; only the
// original name and storage path are recorded.
func (h *CollabHandler) Upload(w http.ResponseWriter, r *http.Request) {
	caller, ok := require(w, r, permissions.ActionUploadAttachment)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	kind := domain.EntityKind(r.FormValue("entity_type"))
	entityID, err := uuid.Parse(r.FormValue("entity_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entity_id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d-%s%s",
		time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(header.Filename))
	storedPath := filepath.Join(h.uploads.Dir, storedName)

	if err := h.saveFile(file, storedPath); err != nil {
		h.log.ErrorContext(r.Context(), "store upload", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	created, err := h.svc.Attach(r.Context(), caller.UserID, collab.AttachmentInput{
		Entity:   domain.EntityRef{Kind: kind, ID: entityID},
		FileName: header.Filename,
		FileURL:  "/uploads/" + storedName,
	})
	if err != nil {
		os.Remove(storedPath) //nolint:errcheck
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toAttachmentResponse(created))
}

// DeleteAttachment handles DELETE /api/attachments/{id}.
func (h *CollabHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid attachment id")
		return
	}

	if err := h.svc.DeleteAttachment(r.Context(), caller.UserID, caller.Role, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "attachment deleted")
}

func (h *CollabHandler) saveFile(src io.Reader, path string) error {
	if err := os.MkdirAll(h.uploads.Dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
