package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

var seedCounter atomic.Int64

func uniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), seedCounter.Add(1))
}

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRoadmap inserts a minimal roadmap owned by createdBy and returns it.
func SeedRoadmap(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Roadmap {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rm := domain.Roadmap{
		ID:                    uuid.New(),
		RefID:                 domain.NewRoadmapRefID(),
		Name:                  "Roadmap " + suffix,
		Timeframe:             "2026-H2",
		StrategicTheme:        "growth",
		StakeholderVisibility: domain.VisibilityInternal,
		Status:                domain.RoadmapStatusPlanning,
		Dependencies:          []string{},
		SuccessMetrics:        map[string]any{},
		PresentationVersion:   "1.0",
		ChangeLog:             []domain.ChangeLogEntry{},
		CreatedBy:             createdBy,
		LastUpdatedAt:         now,
		CreatedAt:             now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO roadmaps (id, ref_id, name, timeframe, strategic_theme,
		   stakeholder_visibility, status, created_by, last_updated_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rm.ID, rm.RefID, rm.Name, rm.Timeframe, rm.StrategicTheme,
		rm.StakeholderVisibility.String(), rm.Status.String(), rm.CreatedBy,
		rm.LastUpdatedAt, rm.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoadmap insert roadmap: %v", err)
	}

	return rm
}

// SeedIdea inserts a minimal idea submitted by submittedBy and returns it.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, submittedBy uuid.UUID) domain.Idea {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	idea := domain.Idea{
		ID:               uuid.New(),
		RefID:            domain.NewIdeaRefID(),
		Name:             "Idea " + suffix,
		ProblemStatement: "Problem " + suffix,
		TargetCustomer:   "SMB admins",
		EstimatedImpact:  domain.ImpactMedium,
		Feasibility:      domain.ImpactMedium,
		RelatedProducts:  []string{},
		TriageStatus:     domain.TriageStatusSubmitted,
		SubmittedBy:      submittedBy,
		SubmissionDate:   now,
		CreatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ideas (id, ref_id, name, problem_statement, target_customer,
		   estimated_impact, feasibility, triage_status, submitted_by, submission_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		idea.ID, idea.RefID, idea.Name, idea.ProblemStatement, idea.TargetCustomer,
		idea.EstimatedImpact.String(), idea.Feasibility.String(), idea.TriageStatus.String(),
		idea.SubmittedBy, idea.SubmissionDate, idea.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea insert idea: %v", err)
	}

	return idea
}

// SeedRequirement inserts a minimal requirement created by createdBy and
// returns it.
func SeedRequirement(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Requirement {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.Requirement{
		ID:                 uuid.New(),
		RefID:              domain.NewRequirementRefID(),
		Type:               domain.RequirementTypeFeature,
		UserStory:          "As a user I want " + suffix,
		AcceptanceCriteria: "Criteria " + suffix,
		Priority:           domain.PriorityMedium,
		Complexity:         domain.ComplexityM,
		Status:             domain.RequirementStatusDraft,
		CreatedBy:          createdBy,
		LastUpdatedAt:      now,
		CreatedAt:          now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO requirements (id, ref_id, requirement_type, user_story, acceptance_criteria,
		   priority, complexity, status, created_by, last_updated_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		req.ID, req.RefID, req.Type.String(), req.UserStory, req.AcceptanceCriteria,
		req.Priority.String(), req.Complexity.String(), req.Status.String(),
		req.CreatedBy, req.LastUpdatedAt, req.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequirement insert requirement: %v", err)
	}

	return req
}
