package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	roadmaprepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Update applies a patch to a roadmap and appends one change-log entry
// describing exactly the fields the patch set. A status change notifies the
// roadmap's creator.
func (s *Service) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateInput) (*domain.Roadmap, error) {
	input.Name = domain.SanitizePtr(input.Name)
	input.Timeframe = domain.SanitizePtr(input.Timeframe)
	input.StrategicTheme = domain.SanitizePtr(input.StrategicTheme)
	input.RiskAssessment = domain.SanitizePtr(input.RiskAssessment)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := domain.ChangeLogEntry{
		Action:    domain.ChangeLogUpdated,
		Timestamp: time.Now(),
		UserID:    actorID,
		Changes:   input.changes(),
	}

	updated, err := s.repo.Update(ctx, id, roadmaprepo.UpdateParams{
		Name:                  input.Name,
		Timeframe:             input.Timeframe,
		StrategicTheme:        input.StrategicTheme,
		NextReviewDate:        input.NextReviewDate,
		StakeholderVisibility: input.StakeholderVisibility,
		Status:                input.Status,
		Dependencies:          input.Dependencies,
		RiskAssessment:        input.RiskAssessment,
		SuccessMetrics:        input.SuccessMetrics,
		PresentationVersion:   input.PresentationVersion,
	}, entry)
	if err != nil {
		return nil, fmt.Errorf("roadmap.Update: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionUpdate, domain.EntityKindRoadmap, updated.ID, entry.Changes)

	if input.Status != nil {
		s.notify.Notify(ctx, updated.CreatedBy, domain.NotifStatusChange,
			fmt.Sprintf("Roadmap %q status changed to %s", updated.Name, input.Status.String()),
			domain.EntityKindRoadmap, updated.ID)
	}

	return updated, nil
}
