package domain

import (
	"time"

	"github.com/google/uuid"
)

// Roadmap is a strategic product roadmap. Its change log is embedded in the
// entity and is append-only: every update and approval adds exactly one
// entry, and prior entries are never rewritten.
type Roadmap struct {
	ID                    uuid.UUID
	RefID                 string // display ID, "RM-..."
	Name                  string
	Timeframe             string
	StrategicTheme        string
	NextReviewDate        *time.Time
	StakeholderVisibility Visibility
	Status                RoadmapStatus
	Dependencies          []string
	RiskAssessment        string
	SuccessMetrics        map[string]any
	PresentationVersion   string
	ChangeLog             []ChangeLogEntry
	CreatedBy             uuid.UUID
	CreatedByName         string // joined, read-only
	ApprovedBy            *uuid.UUID
	ApprovedByName        string // joined, read-only
	ApprovalDate          *time.Time
	LastUpdatedAt         time.Time
	CreatedAt             time.Time
}

// ChangeLogEntry is one event in a roadmap's embedded history.
type ChangeLogEntry struct {
	Action    string         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    uuid.UUID      `json:"user_id"`
	Changes   map[string]any `json:"changes,omitempty"`
}

const (
	ChangeLogCreated  = "created"
	ChangeLogUpdated  = "updated"
	ChangeLogApproved = "approved"
)

// IsApproved reports whether the roadmap has already been approved.
func (r *Roadmap) IsApproved() bool {
	return r.Status == RoadmapStatusApproved
}
