package roadmap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	roadmaprepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Get returns a roadmap by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("roadmap.Get: %w", err)
	}
	return rm, nil
}

// List returns roadmaps newest first plus the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Roadmap, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, roadmaprepo.Filter{
		Status: input.Status,
		Theme:  input.Theme,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("roadmap.List: %w", err)
	}
	return items, total, nil
}
