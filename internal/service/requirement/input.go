package requirement

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// CreateInput holds parameters for creating a requirement.
type CreateInput struct {
	Type                   domain.RequirementType
	UserStory              string
	AcceptanceCriteria     string
	Priority               domain.Priority   // defaults to medium
	Complexity             domain.Complexity // defaults to m
	RelatedFeatures        []string
	TechnicalConstraints   string
	SecurityConsiderations string
	ComplianceNeeds        string
	MockupReferences       []string
	RoadmapID              *uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "requirement_type", Message: "required"})
	} else if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "requirement_type", Message: "unknown type"})
	}
	if i.UserStory == "" {
		errs = append(errs, domain.FieldError{Field: "user_story", Message: "required"})
	}
	if i.AcceptanceCriteria == "" {
		errs = append(errs, domain.FieldError{Field: "acceptance_criteria", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if i.Complexity != "" && !i.Complexity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "complexity", Message: "unknown complexity"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a patch for a requirement. Nil fields are left unchanged.
// ClearRoadmap detaches the requirement from its roadmap.
type UpdateInput struct {
	Type                   *domain.RequirementType
	UserStory              *string
	AcceptanceCriteria     *string
	Priority               *domain.Priority
	Complexity             *domain.Complexity
	Status                 *domain.RequirementStatus
	RelatedFeatures        *[]string
	TechnicalConstraints   *string
	SecurityConsiderations *string
	ComplianceNeeds        *string
	MockupReferences       *[]string
	RoadmapID              *uuid.UUID
	ClearRoadmap           bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "requirement_type", Message: "unknown type"})
	}
	if i.UserStory != nil && *i.UserStory == "" {
		errs = append(errs, domain.FieldError{Field: "user_story", Message: "must not be empty"})
	}
	if i.AcceptanceCriteria != nil && *i.AcceptanceCriteria == "" {
		errs = append(errs, domain.FieldError{Field: "acceptance_criteria", Message: "must not be empty"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if i.Complexity != nil && !i.Complexity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "complexity", Message: "unknown complexity"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// changes builds the activity-log payload from the fields the patch sets.
func (i UpdateInput) changes() map[string]any {
	ch := make(map[string]any)
	if i.Type != nil {
		ch["requirement_type"] = i.Type.String()
	}
	if i.UserStory != nil {
		ch["user_story"] = *i.UserStory
	}
	if i.AcceptanceCriteria != nil {
		ch["acceptance_criteria"] = *i.AcceptanceCriteria
	}
	if i.Priority != nil {
		ch["priority"] = i.Priority.String()
	}
	if i.Complexity != nil {
		ch["complexity"] = i.Complexity.String()
	}
	if i.Status != nil {
		ch["status"] = i.Status.String()
	}
	if i.RoadmapID != nil {
		ch["roadmap_id"] = i.RoadmapID.String()
	}
	if i.ClearRoadmap {
		ch["roadmap_id"] = nil
	}
	return ch
}

// ListInput holds parameters for listing requirements.
type ListInput struct {
	Status    *domain.RequirementStatus
	Priority  *domain.Priority
	RoadmapID *uuid.UUID
	Limit     int
	Offset    int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
