// Package requirement implements the requirement lifecycle: create, list,
// patch updates, one-shot validation, and guarded delete.
package requirement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// repo defines the requirement repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error)
	List(ctx context.Context, f requirementrepo.Filter) ([]domain.Requirement, int, error)
	Update(ctx context.Context, id uuid.UUID, p requirementrepo.UpdateParams) (*domain.Requirement, error)
	Validate(ctx context.Context, id, validatedBy uuid.UUID) (*domain.Requirement, error)
	LinkedIdeaCount(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// roadmapResolver checks that a referenced roadmap exists.
type roadmapResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
}

type recorder interface {
	Record(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, entityType domain.EntityKind, entityID uuid.UUID, changes map[string]any)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, message string, entityType domain.EntityKind, entityID uuid.UUID)
}

// Service implements requirement operations.
type Service struct {
	log      *slog.Logger
	repo     repo
	roadmaps roadmapResolver
	activity recorder
	notify   notifier
}

// NewService creates a new requirement service instance.
func NewService(logger *slog.Logger, r repo, roadmaps roadmapResolver, activity recorder, notify notifier) *Service {
	return &Service{
		log:      logger.With("service", "requirement"),
		repo:     r,
		roadmaps: roadmaps,
		activity: activity,
		notify:   notify,
	}
}
