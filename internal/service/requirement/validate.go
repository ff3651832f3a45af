package requirement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// ValidateRequirement marks a requirement validated and stamps the
// validator. Validation is not idempotent: validating an already-validated
// requirement reports ErrConflict.
func (s *Service) ValidateRequirement(ctx context.Context, actorID, id uuid.UUID) (*domain.Requirement, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("requirement.Validate: %w", err)
	}
	if req.IsValidated() {
		return nil, fmt.Errorf("requirement %s is already validated: %w", id, domain.ErrConflict)
	}

	validated, err := s.repo.Validate(ctx, id, actorID)
	if err != nil {
		return nil, fmt.Errorf("requirement.Validate: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionValidate, domain.EntityKindRequirement, validated.ID, nil)
	s.notify.Notify(ctx, validated.CreatedBy, domain.NotifRequirementValidated,
		fmt.Sprintf("Requirement %s has been validated", validated.RefID),
		domain.EntityKindRequirement, validated.ID)

	s.log.InfoContext(ctx, "requirement validated",
		"requirement_id", validated.ID.String(),
		"validated_by", actorID.String())

	return validated, nil
}
