// Package idea implements the idea funnel: submission, triage, and one-shot
// promotion into a requirement.
package idea

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	idearepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/idea"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// repo defines the idea repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, in *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, f idearepo.Filter) ([]domain.Idea, int, error)
	Update(ctx context.Context, id uuid.UUID, p idearepo.UpdateParams) (*domain.Idea, error)
	Triage(ctx context.Context, id uuid.UUID, status domain.TriageStatus, triagedBy uuid.UUID, nextSteps *string) (*domain.Idea, error)
	SetPromoted(ctx context.Context, id, requirementID, promotedBy uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// requirementCreator inserts the requirement produced by a promotion.
type requirementCreator interface {
	Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	Record(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, entityType domain.EntityKind, entityID uuid.UUID, changes map[string]any)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, message string, entityType domain.EntityKind, entityID uuid.UUID)
}

// Service implements idea operations.
type Service struct {
	log          *slog.Logger
	repo         repo
	requirements requirementCreator
	tx           txManager
	activity     recorder
	notify       notifier
}

// NewService creates a new idea service instance.
func NewService(logger *slog.Logger, r repo, requirements requirementCreator, tx txManager, activity recorder, notify notifier) *Service {
	return &Service{
		log:          logger.With("service", "idea"),
		repo:         r,
		requirements: requirements,
		tx:           tx,
		activity:     activity,
		notify:       notify,
	}
}
