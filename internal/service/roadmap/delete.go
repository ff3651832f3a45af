package roadmap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Delete removes a roadmap. A roadmap with linked requirements cannot be
// deleted; the requirements must be detached or deleted first.
func (s *Service) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("roadmap.Delete: %w", err)
	}

	n, err := s.repo.LinkedRequirementCount(ctx, id)
	if err != nil {
		return fmt.Errorf("roadmap.Delete: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("roadmap %s has %d linked requirements: %w", id, n, domain.ErrConflict)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("roadmap.Delete: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionDelete, domain.EntityKindRoadmap, id,
		map[string]any{"name": rm.Name, "ref_id": rm.RefID})

	s.log.InfoContext(ctx, "roadmap deleted", "roadmap_id", id.String())

	return nil
}
