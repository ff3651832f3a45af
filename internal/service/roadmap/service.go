// Package roadmap implements the roadmap lifecycle: create, list, patch
// updates with an embedded change log, one-shot approval, and guarded delete.
package roadmap

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	roadmaprepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// repo defines the roadmap repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, rm *domain.Roadmap) (*domain.Roadmap, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
	List(ctx context.Context, f roadmaprepo.Filter) ([]domain.Roadmap, int, error)
	Update(ctx context.Context, id uuid.UUID, p roadmaprepo.UpdateParams, entry domain.ChangeLogEntry) (*domain.Roadmap, error)
	Approve(ctx context.Context, id, approvedBy uuid.UUID, entry domain.ChangeLogEntry) (*domain.Roadmap, error)
	LinkedRequirementCount(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// recorder appends activity-log entries; failures are swallowed by the
// implementation.
type recorder interface {
	Record(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, entityType domain.EntityKind, entityID uuid.UUID, changes map[string]any)
}

// notifier delivers best-effort notifications; failures and self-notifies
// are swallowed by the implementation.
type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, message string, entityType domain.EntityKind, entityID uuid.UUID)
}

// Service implements roadmap operations.
type Service struct {
	log      *slog.Logger
	repo     repo
	activity recorder
	notify   notifier
}

// NewService creates a new roadmap service instance.
func NewService(logger *slog.Logger, r repo, activity recorder, notify notifier) *Service {
	return &Service{
		log:      logger.With("service", "roadmap"),
		repo:     r,
		activity: activity,
		notify:   notify,
	}
}
