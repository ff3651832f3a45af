package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one append-only entry in the activity log. Records are
// never mutated or deleted; display order is created_at descending.
type ActivityRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UserName   string // joined, read-only
	Action     ActivityAction
	EntityType EntityKind
	EntityID   uuid.UUID
	Changes    map[string]any
	CreatedAt  time.Time
}

// Notification is a best-effort message to a user about a lifecycle event on
// one of their entities. The only mutation is the recipient marking it read.
type Notification struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Message    string
	Type       NotificationType
	Read       bool
	EntityType EntityKind
	EntityID   uuid.UUID
	CreatedAt  time.Time
}
