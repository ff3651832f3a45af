// Package activity implements the append-only activity log. Recording is
// best-effort: a failed write is logged and swallowed so it never fails the
// operation that produced it.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	activityrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// repo defines the activity repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, rec *domain.ActivityRecord) error
	List(ctx context.Context, f activityrepo.Filter) ([]domain.ActivityRecord, int, error)
	Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
}

// Service implements activity log operations.
type Service struct {
	log  *slog.Logger
	repo repo
}

// NewService creates a new activity service instance.
func NewService(logger *slog.Logger, r repo) *Service {
	return &Service{
		log:  logger.With("service", "activity"),
		repo: r,
	}
}

// Record appends one entry to the activity log. Errors are logged, never
// returned.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, entityType domain.EntityKind, entityID uuid.UUID, changes map[string]any) {
	rec := &domain.ActivityRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "activity record dropped",
			"action", action.String(),
			"entity_type", entityType.String(),
			"entity_id", entityID.String(),
			"error", err)
	}
}

// ListInput holds parameters for listing the activity log.
type ListInput struct {
	EntityType *domain.EntityKind
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.EntityType != nil && !i.EntityType.IsValid() && *i.EntityType != domain.EntityKindAttachment {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns activity records newest first plus the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.ActivityRecord, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, activityrepo.Filter{
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("activity.List: %w", err)
	}
	return items, total, nil
}

// Recent returns the latest records across all entities.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	items, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("activity.Recent: %w", err)
	}
	return items, nil
}
