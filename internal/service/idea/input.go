package idea

import (
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// SubmitInput holds parameters for submitting an idea.
type SubmitInput struct {
	Name                  string
	ProblemStatement      string
	TargetCustomer        string
	EstimatedImpact       domain.ImpactLevel // defaults to medium
	Feasibility           domain.ImpactLevel // defaults to medium
	AlignmentWithStrategy string
	CompetitiveAdvantage  string
	RelatedProducts       []string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ProblemStatement == "" {
		errs = append(errs, domain.FieldError{Field: "problem_statement", Message: "required"})
	}
	if i.TargetCustomer == "" {
		errs = append(errs, domain.FieldError{Field: "target_customer", Message: "required"})
	}
	if i.EstimatedImpact != "" && !i.EstimatedImpact.IsValid() {
		errs = append(errs, domain.FieldError{Field: "estimated_impact", Message: "unknown impact level"})
	}
	if i.Feasibility != "" && !i.Feasibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "feasibility", Message: "unknown feasibility level"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a patch for an idea. Nil fields are left unchanged.
type UpdateInput struct {
	Name                  *string
	ProblemStatement      *string
	TargetCustomer        *string
	EstimatedImpact       *domain.ImpactLevel
	Feasibility           *domain.ImpactLevel
	AlignmentWithStrategy *string
	CompetitiveAdvantage  *string
	RelatedProducts       *[]string
	NextSteps             *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.ProblemStatement != nil && *i.ProblemStatement == "" {
		errs = append(errs, domain.FieldError{Field: "problem_statement", Message: "must not be empty"})
	}
	if i.TargetCustomer != nil && *i.TargetCustomer == "" {
		errs = append(errs, domain.FieldError{Field: "target_customer", Message: "must not be empty"})
	}
	if i.EstimatedImpact != nil && !i.EstimatedImpact.IsValid() {
		errs = append(errs, domain.FieldError{Field: "estimated_impact", Message: "unknown impact level"})
	}
	if i.Feasibility != nil && !i.Feasibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "feasibility", Message: "unknown feasibility level"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TriageInput holds parameters for triaging an idea.
type TriageInput struct {
	Status    domain.TriageStatus
	NextSteps *string
}

// Validate validates the triage input. Any member of the closed triage set
// is accepted, including a move back to submitted.
func (i TriageInput) Validate() error {
	var errs []domain.FieldError

	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "triage_status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "triage_status", Message: "unknown triage status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing ideas.
type ListInput struct {
	TriageStatus *domain.TriageStatus
	Impact       *domain.ImpactLevel
	Limit        int
	Offset       int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.TriageStatus != nil && !i.TriageStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "triage_status", Message: "unknown triage status"})
	}
	if i.Impact != nil && !i.Impact.IsValid() {
		errs = append(errs, domain.FieldError{Field: "impact", Message: "unknown impact level"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
