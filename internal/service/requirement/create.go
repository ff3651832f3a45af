package requirement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Create creates a requirement. A referenced roadmap must exist; a dangling
// roadmap_id is a validation failure, not a 404 on the requirement.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, input CreateInput) (*domain.Requirement, error) {
	input.UserStory = domain.Sanitize(input.UserStory)
	input.AcceptanceCriteria = domain.Sanitize(input.AcceptanceCriteria)
	input.TechnicalConstraints = domain.Sanitize(input.TechnicalConstraints)
	input.SecurityConsiderations = domain.Sanitize(input.SecurityConsiderations)
	input.ComplianceNeeds = domain.Sanitize(input.ComplianceNeeds)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.RoadmapID != nil {
		if _, err := s.roadmaps.GetByID(ctx, *input.RoadmapID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ValidationError{Errors: []domain.FieldError{
					{Field: "roadmap_id", Message: "roadmap does not exist"},
				}}
			}
			return nil, fmt.Errorf("requirement.Create resolve roadmap: %w", err)
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	complexity := input.Complexity
	if complexity == "" {
		complexity = domain.ComplexityM
	}

	now := time.Now()
	req := &domain.Requirement{
		ID:                     uuid.New(),
		RefID:                  domain.NewRequirementRefID(),
		Type:                   input.Type,
		UserStory:              input.UserStory,
		AcceptanceCriteria:     input.AcceptanceCriteria,
		Priority:               priority,
		Complexity:             complexity,
		Status:                 domain.RequirementStatusDraft,
		RelatedFeatures:        input.RelatedFeatures,
		TechnicalConstraints:   input.TechnicalConstraints,
		SecurityConsiderations: input.SecurityConsiderations,
		ComplianceNeeds:        input.ComplianceNeeds,
		MockupReferences:       input.MockupReferences,
		RoadmapID:              input.RoadmapID,
		CreatedBy:              actorID,
		LastUpdatedAt:          now,
		CreatedAt:              now,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("requirement.Create: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionCreate, domain.EntityKindRequirement, created.ID,
		map[string]any{"ref_id": created.RefID, "requirement_type": created.Type.String()})

	s.log.InfoContext(ctx, "requirement created",
		"requirement_id", created.ID.String(),
		"ref_id", created.RefID)

	return created, nil
}
