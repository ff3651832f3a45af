package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Promote turns an idea into a draft requirement. The requirement insert and
// the idea link run in one transaction, so the pair either fully exists or
// not at all. Promotion is one-shot: a second call reports ErrConflict and
// the existing link is untouched.
func (s *Service) Promote(ctx context.Context, actorID, id uuid.UUID) (*domain.Requirement, *domain.Idea, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("idea.Promote: %w", err)
	}
	if in.IsPromoted() {
		return nil, nil, fmt.Errorf("idea %s is already promoted: %w", id, domain.ErrConflict)
	}

	now := time.Now()
	draft := &domain.Requirement{
		ID:                 uuid.New(),
		RefID:              domain.NewRequirementRefID(),
		Type:               domain.RequirementTypeFeature,
		UserStory:          in.ProblemStatement,
		AcceptanceCriteria: "Target customer: " + in.TargetCustomer,
		Priority:           domain.PriorityMedium,
		Complexity:         domain.ComplexityM,
		Status:             domain.RequirementStatusDraft,
		CreatedBy:          actorID,
		LastUpdatedAt:      now,
		CreatedAt:          now,
	}

	var created *domain.Requirement
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requirements.Create(txCtx, draft)
		if err != nil {
			return fmt.Errorf("create requirement: %w", err)
		}
		if err := s.repo.SetPromoted(txCtx, id, req.ID, actorID); err != nil {
			return fmt.Errorf("link idea: %w", err)
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("idea.Promote: %w", err)
	}

	promoted, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("idea.Promote reload: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionPromote, domain.EntityKindIdea, id,
		map[string]any{"requirement_id": created.ID.String(), "requirement_ref_id": created.RefID})
	s.notify.Notify(ctx, promoted.SubmittedBy, domain.NotifIdeaPromoted,
		fmt.Sprintf("Your idea %q was promoted to requirement %s", promoted.Name, created.RefID),
		domain.EntityKindIdea, id)

	s.log.InfoContext(ctx, "idea promoted",
		"idea_id", id.String(),
		"requirement_id", created.ID.String())

	return created, promoted, nil
}
