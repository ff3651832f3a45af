package requirement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Update applies a patch to a requirement. A status change notifies the
// requirement's creator.
func (s *Service) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateInput) (*domain.Requirement, error) {
	input.UserStory = domain.SanitizePtr(input.UserStory)
	input.AcceptanceCriteria = domain.SanitizePtr(input.AcceptanceCriteria)
	input.TechnicalConstraints = domain.SanitizePtr(input.TechnicalConstraints)
	input.SecurityConsiderations = domain.SanitizePtr(input.SecurityConsiderations)
	input.ComplianceNeeds = domain.SanitizePtr(input.ComplianceNeeds)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.RoadmapID != nil && !input.ClearRoadmap {
		if _, err := s.roadmaps.GetByID(ctx, *input.RoadmapID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ValidationError{Errors: []domain.FieldError{
					{Field: "roadmap_id", Message: "roadmap does not exist"},
				}}
			}
			return nil, fmt.Errorf("requirement.Update resolve roadmap: %w", err)
		}
	}

	updated, err := s.repo.Update(ctx, id, requirementrepo.UpdateParams{
		Type:                   input.Type,
		UserStory:              input.UserStory,
		AcceptanceCriteria:     input.AcceptanceCriteria,
		Priority:               input.Priority,
		Complexity:             input.Complexity,
		Status:                 input.Status,
		RelatedFeatures:        input.RelatedFeatures,
		TechnicalConstraints:   input.TechnicalConstraints,
		SecurityConsiderations: input.SecurityConsiderations,
		ComplianceNeeds:        input.ComplianceNeeds,
		MockupReferences:       input.MockupReferences,
		RoadmapID:              input.RoadmapID,
		ClearRoadmap:           input.ClearRoadmap,
	})
	if err != nil {
		return nil, fmt.Errorf("requirement.Update: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionUpdate, domain.EntityKindRequirement, updated.ID, input.changes())

	if input.Status != nil {
		s.notify.Notify(ctx, updated.CreatedBy, domain.NotifStatusChange,
			fmt.Sprintf("Requirement %s status changed to %s", updated.RefID, input.Status.String()),
			domain.EntityKindRequirement, updated.ID)
	}

	return updated, nil
}
