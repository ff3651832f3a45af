package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Approve marks a roadmap approved. Approval is not idempotent: approving an
// already-approved roadmap reports ErrConflict.
func (s *Service) Approve(ctx context.Context, actorID, id uuid.UUID) (*domain.Roadmap, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("roadmap.Approve: %w", err)
	}
	if rm.IsApproved() {
		return nil, fmt.Errorf("roadmap %s is already approved: %w", id, domain.ErrConflict)
	}

	entry := domain.ChangeLogEntry{
		Action:    domain.ChangeLogApproved,
		Timestamp: time.Now(),
		UserID:    actorID,
	}

	approved, err := s.repo.Approve(ctx, id, actorID, entry)
	if err != nil {
		return nil, fmt.Errorf("roadmap.Approve: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionApprove, domain.EntityKindRoadmap, approved.ID, nil)
	s.notify.Notify(ctx, approved.CreatedBy, domain.NotifRoadmapApproved,
		fmt.Sprintf("Roadmap %q has been approved", approved.Name),
		domain.EntityKindRoadmap, approved.ID)

	s.log.InfoContext(ctx, "roadmap approved",
		"roadmap_id", approved.ID.String(),
		"approved_by", actorID.String())

	return approved, nil
}
