package requirement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Get returns a requirement by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("requirement.Get: %w", err)
	}
	return req, nil
}

// List returns requirements newest first plus the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Requirement, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, requirementrepo.Filter{
		Status:    input.Status,
		Priority:  input.Priority,
		RoadmapID: input.RoadmapID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("requirement.List: %w", err)
	}
	return items, total, nil
}
