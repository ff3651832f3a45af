package requirement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Delete removes a requirement. A requirement that promoted ideas link to
// cannot be deleted; the ideas keep their audit trail.
func (s *Service) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("requirement.Delete: %w", err)
	}

	n, err := s.repo.LinkedIdeaCount(ctx, id)
	if err != nil {
		return fmt.Errorf("requirement.Delete: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("requirement %s has %d linked ideas: %w", id, n, domain.ErrConflict)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("requirement.Delete: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionDelete, domain.EntityKindRequirement, id,
		map[string]any{"ref_id": req.RefID})

	s.log.InfoContext(ctx, "requirement deleted", "requirement_id", id.String())

	return nil
}
