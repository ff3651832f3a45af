package idea

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Triage records a triage decision and stamps the reviewer. Triage may move
// an idea to any member of the closed status set, in any order.
func (s *Service) Triage(ctx context.Context, actorID, id uuid.UUID, input TriageInput) (*domain.Idea, error) {
	input.NextSteps = domain.SanitizePtr(input.NextSteps)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	triaged, err := s.repo.Triage(ctx, id, input.Status, actorID, input.NextSteps)
	if err != nil {
		return nil, fmt.Errorf("idea.Triage: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionTriage, domain.EntityKindIdea, triaged.ID,
		map[string]any{"triage_status": input.Status.String()})
	s.notify.Notify(ctx, triaged.SubmittedBy, domain.NotifIdeaTriaged,
		fmt.Sprintf("Your idea %q was triaged: %s", triaged.Name, input.Status.String()),
		domain.EntityKindIdea, triaged.ID)

	s.log.InfoContext(ctx, "idea triaged",
		"idea_id", triaged.ID.String(),
		"triage_status", input.Status.String())

	return triaged, nil
}
