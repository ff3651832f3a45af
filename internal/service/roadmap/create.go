package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Create creates a roadmap owned by actorID with a single "created"
// change-log entry.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, input CreateInput) (*domain.Roadmap, error) {
	input.Name = domain.Sanitize(input.Name)
	input.Timeframe = domain.Sanitize(input.Timeframe)
	input.StrategicTheme = domain.Sanitize(input.StrategicTheme)
	input.RiskAssessment = domain.Sanitize(input.RiskAssessment)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	visibility := input.StakeholderVisibility
	if visibility == "" {
		visibility = domain.VisibilityInternal
	}
	version := input.PresentationVersion
	if version == "" {
		version = "1.0"
	}

	now := time.Now()
	rm := &domain.Roadmap{
		ID:                    uuid.New(),
		RefID:                 domain.NewRoadmapRefID(),
		Name:                  input.Name,
		Timeframe:             input.Timeframe,
		StrategicTheme:        input.StrategicTheme,
		NextReviewDate:        input.NextReviewDate,
		StakeholderVisibility: visibility,
		Status:                domain.RoadmapStatusPlanning,
		Dependencies:          input.Dependencies,
		RiskAssessment:        input.RiskAssessment,
		SuccessMetrics:        input.SuccessMetrics,
		PresentationVersion:   version,
		ChangeLog: []domain.ChangeLogEntry{
			{Action: domain.ChangeLogCreated, Timestamp: now, UserID: actorID},
		},
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		CreatedAt:     now,
	}

	created, err := s.repo.Create(ctx, rm)
	if err != nil {
		return nil, fmt.Errorf("roadmap.Create: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionCreate, domain.EntityKindRoadmap, created.ID,
		map[string]any{"name": created.Name, "ref_id": created.RefID})

	s.log.InfoContext(ctx, "roadmap created",
		"roadmap_id", created.ID.String(),
		"ref_id", created.RefID)

	return created, nil
}
