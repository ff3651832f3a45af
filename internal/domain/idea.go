package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a product idea submitted by any user. Promotion to a requirement
// is one-shot: a populated RequirementID permanently disables promotion.
type Idea struct {
	ID                    uuid.UUID
	RefID                 string // display ID, "IDEA-..."
	Name                  string
	ProblemStatement      string
	TargetCustomer        string
	EstimatedImpact       ImpactLevel
	Feasibility           ImpactLevel
	AlignmentWithStrategy string
	CompetitiveAdvantage  string
	RelatedProducts       []string
	TriageStatus          TriageStatus
	NextSteps             string
	SubmittedBy           uuid.UUID
	SubmittedByName       string // joined, read-only
	SubmissionDate        time.Time
	TriagedBy             *uuid.UUID
	TriagedByName         string // joined, read-only
	TriageDate            *time.Time
	RequirementID         *uuid.UUID
	CreatedAt             time.Time
}

// IsPromoted reports whether the idea has already been promoted to a
// requirement.
func (i *Idea) IsPromoted() bool {
	return i.RequirementID != nil
}
