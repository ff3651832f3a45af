package idea

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	idearepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/idea"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// List returns ideas newest first plus the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Idea, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, idearepo.Filter{
		TriageStatus: input.TriageStatus,
		Impact:       input.Impact,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("idea.List: %w", err)
	}
	return items, total, nil
}

// Update applies a patch to an idea.
func (s *Service) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateInput) (*domain.Idea, error) {
	input.Name = domain.SanitizePtr(input.Name)
	input.ProblemStatement = domain.SanitizePtr(input.ProblemStatement)
	input.TargetCustomer = domain.SanitizePtr(input.TargetCustomer)
	input.AlignmentWithStrategy = domain.SanitizePtr(input.AlignmentWithStrategy)
	input.CompetitiveAdvantage = domain.SanitizePtr(input.CompetitiveAdvantage)
	input.NextSteps = domain.SanitizePtr(input.NextSteps)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, idearepo.UpdateParams{
		Name:                  input.Name,
		ProblemStatement:      input.ProblemStatement,
		TargetCustomer:        input.TargetCustomer,
		EstimatedImpact:       input.EstimatedImpact,
		Feasibility:           input.Feasibility,
		AlignmentWithStrategy: input.AlignmentWithStrategy,
		CompetitiveAdvantage:  input.CompetitiveAdvantage,
		RelatedProducts:       input.RelatedProducts,
		NextSteps:             input.NextSteps,
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Update: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionUpdate, domain.EntityKindIdea, updated.ID, nil)

	return updated, nil
}

// Delete removes an idea. Promoted ideas may be deleted; the requirement
// they produced survives.
func (s *Service) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("idea.Delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("idea.Delete: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionDelete, domain.EntityKindIdea, id,
		map[string]any{"ref_id": in.RefID})

	s.log.InfoContext(ctx, "idea deleted", "idea_id", id.String())

	return nil
}
