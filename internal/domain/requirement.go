package domain

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is a formal product requirement, optionally linked to a
// roadmap. Validation is one-way: once validated, a second validation is a
// conflict, not a no-op.
type Requirement struct {
	ID                     uuid.UUID
	RefID                  string // display ID, "REQ-..."
	Type                   RequirementType
	UserStory              string
	AcceptanceCriteria     string
	Priority               Priority
	Complexity             Complexity
	Status                 RequirementStatus
	RelatedFeatures        []string
	TechnicalConstraints   string
	SecurityConsiderations string
	ComplianceNeeds        string
	MockupReferences       []string
	RoadmapID              *uuid.UUID
	RoadmapName            string // joined, read-only
	CreatedBy              uuid.UUID
	CreatedByName          string // joined, read-only
	ValidatedBy            *uuid.UUID
	ValidatedByName        string // joined, read-only
	ValidationDate         *time.Time
	LastUpdatedAt          time.Time
	CreatedAt              time.Time
}

// IsValidated reports whether the requirement has already been validated.
func (r *Requirement) IsValidated() bool {
	return r.Status == RequirementStatusValidated
}
