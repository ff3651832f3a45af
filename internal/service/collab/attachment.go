package collab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
)

// AttachmentInput holds parameters for recording an uploaded file.
type AttachmentInput struct {
	Entity   domain.EntityRef
	FileName string
	FileURL  string
}

// Validate validates the attachment input.
func (i AttachmentInput) Validate() error {
	if err := i.Entity.Validate(); err != nil {
		return err
	}

	var errs []domain.FieldError
	if i.FileName == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if i.FileURL == "" {
		errs = append(errs, domain.FieldError{Field: "file_url", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Attach records an uploaded file against an entity. The entity must exist.
// Only the storage location is recorded; the bytes live on disk.
func (s *Service) Attach(ctx context.Context, actorID uuid.UUID, input AttachmentInput) (*domain.Attachment, error) {
	input.FileName = domain.Sanitize(input.FileName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, _, err := s.resolveEntity(ctx, input.Entity); err != nil {
		return nil, fmt.Errorf("collab.Attach: %w", err)
	}

	created, err := s.attachments.Create(ctx, &domain.Attachment{
		ID:         uuid.New(),
		Entity:     input.Entity,
		FileName:   input.FileName,
		FileURL:    input.FileURL,
		UploadedBy: actorID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("collab.Attach: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionUpload, input.Entity.Kind, input.Entity.ID,
		map[string]any{"file_name": created.FileName})

	return created, nil
}

// Attachments lists all attachments on an entity, newest first.
func (s *Service) Attachments(ctx context.Context, ref domain.EntityRef) ([]domain.Attachment, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := s.resolveEntity(ctx, ref); err != nil {
		return nil, fmt.Errorf("collab.Attachments: %w", err)
	}

	items, err := s.attachments.ListByEntity(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("collab.Attachments: %w", err)
	}
	return items, nil
}

// DeleteAttachment removes an attachment record. Managers may delete any
// attachment; other roles only their own uploads.
func (s *Service) DeleteAttachment(ctx context.Context, actorID uuid.UUID, actorRole domain.Role, id uuid.UUID) error {
	a, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("collab.DeleteAttachment: %w", err)
	}

	if !permissions.CanDeleteAttachment(actorRole, a.UploadedBy, actorID) {
		return fmt.Errorf("attachment %s: %w", id, domain.ErrForbidden)
	}

	if err := s.attachments.Delete(ctx, id); err != nil {
		return fmt.Errorf("collab.DeleteAttachment: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionDelete, domain.EntityKindAttachment, id,
		map[string]any{"file_name": a.FileName})

	s.log.InfoContext(ctx, "attachment deleted", "attachment_id", id.String())

	return nil
}
