// Package collab implements the collaboration surface shared by roadmaps,
// requirements, and ideas: immutable comments and file attachments, both
// keyed by a polymorphic entity reference that is resolved before any write.
package collab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// commentRepo defines the comment repository interface needed by the service.
type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.Comment, error)
}

// attachmentRepo defines the attachment repository interface needed by the
// service.
type attachmentRepo interface {
	Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roadmapResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
}

type requirementResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error)
}

type ideaResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
}

type recorder interface {
	Record(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, entityType domain.EntityKind, entityID uuid.UUID, changes map[string]any)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, message string, entityType domain.EntityKind, entityID uuid.UUID)
}

// Service implements comment and attachment operations.
type Service struct {
	log          *slog.Logger
	comments     commentRepo
	attachments  attachmentRepo
	roadmaps     roadmapResolver
	requirements requirementResolver
	ideas        ideaResolver
	activity     recorder
	notify       notifier
}

// NewService creates a new collab service instance.
func NewService(
	logger *slog.Logger,
	comments commentRepo,
	attachments attachmentRepo,
	roadmaps roadmapResolver,
	requirements requirementResolver,
	ideas ideaResolver,
	activity recorder,
	notify notifier,
) *Service {
	return &Service{
		log:          logger.With("service", "collab"),
		comments:     comments,
		attachments:  attachments,
		roadmaps:     roadmaps,
		requirements: requirements,
		ideas:        ideas,
		activity:     activity,
		notify:       notify,
	}
}

// resolveEntity confirms the referenced entity exists and returns its owner
// (creator or submitter) and display name for notification wording.
func (s *Service) resolveEntity(ctx context.Context, ref domain.EntityRef) (ownerID uuid.UUID, label string, err error) {
	switch ref.Kind {
	case domain.EntityKindRoadmap:
		rm, err := s.roadmaps.GetByID(ctx, ref.ID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return rm.CreatedBy, rm.Name, nil
	case domain.EntityKindRequirement:
		req, err := s.requirements.GetByID(ctx, ref.ID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return req.CreatedBy, req.RefID, nil
	case domain.EntityKindIdea:
		in, err := s.ideas.GetByID(ctx, ref.ID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return in.SubmittedBy, in.Name, nil
	}
	return uuid.Nil, "", fmt.Errorf("entity kind %q: %w", ref.Kind, domain.ErrValidation)
}
