package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Submit creates an idea in the submitted triage state. Any authenticated
// user may submit.
func (s *Service) Submit(ctx context.Context, actorID uuid.UUID, input SubmitInput) (*domain.Idea, error) {
	input.Name = domain.Sanitize(input.Name)
	input.ProblemStatement = domain.Sanitize(input.ProblemStatement)
	input.TargetCustomer = domain.Sanitize(input.TargetCustomer)
	input.AlignmentWithStrategy = domain.Sanitize(input.AlignmentWithStrategy)
	input.CompetitiveAdvantage = domain.Sanitize(input.CompetitiveAdvantage)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	impact := input.EstimatedImpact
	if impact == "" {
		impact = domain.ImpactMedium
	}
	feasibility := input.Feasibility
	if feasibility == "" {
		feasibility = domain.ImpactMedium
	}

	now := time.Now()
	in := &domain.Idea{
		ID:                    uuid.New(),
		RefID:                 domain.NewIdeaRefID(),
		Name:                  input.Name,
		ProblemStatement:      input.ProblemStatement,
		TargetCustomer:        input.TargetCustomer,
		EstimatedImpact:       impact,
		Feasibility:           feasibility,
		AlignmentWithStrategy: input.AlignmentWithStrategy,
		CompetitiveAdvantage:  input.CompetitiveAdvantage,
		RelatedProducts:       input.RelatedProducts,
		TriageStatus:          domain.TriageStatusSubmitted,
		SubmittedBy:           actorID,
		SubmissionDate:        now,
		CreatedAt:             now,
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("idea.Submit: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionCreate, domain.EntityKindIdea, created.ID,
		map[string]any{"name": created.Name, "ref_id": created.RefID})

	s.log.InfoContext(ctx, "idea submitted",
		"idea_id", created.ID.String(),
		"ref_id", created.RefID)

	return created, nil
}

// Get returns an idea by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("idea.Get: %w", err)
	}
	return in, nil
}
