package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityRef is a validated polymorphic reference to a roadmap, requirement,
// or idea. Writers must resolve the referenced entity before persisting
// anything keyed by an EntityRef.
type EntityRef struct {
	Kind EntityKind
	ID   uuid.UUID
}

// Validate checks that the kind is a referenceable entity kind and the ID is
// set. It does not check existence; that is the resolver's job.
func (r EntityRef) Validate() error {
	var errs []FieldError
	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "entity_type", Message: "must be roadmap, requirement, or idea"})
	}
	if r.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "entity_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Comment is an immutable remark on an entity. There is no edit or delete
// operation.
type Comment struct {
	ID         uuid.UUID
	Entity     EntityRef
	AuthorID   uuid.UUID
	AuthorName string // joined, read-only
	Content    string
	CreatedAt  time.Time
}

// Attachment is a file reference tied to an entity. Only the storage
// location is recorded; file contents live outside the database.
type Attachment struct {
	ID             uuid.UUID
	Entity         EntityRef
	FileName       string
	FileURL        string
	UploadedBy     uuid.UUID
	UploadedByName string // joined, read-only
	CreatedAt      time.Time
}
