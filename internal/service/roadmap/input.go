package roadmap

import (
	"time"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// CreateInput holds parameters for creating a roadmap.
type CreateInput struct {
	Name                  string
	Timeframe             string
	StrategicTheme        string
	NextReviewDate        *time.Time
	StakeholderVisibility domain.Visibility // defaults to internal
	Dependencies          []string
	RiskAssessment        string
	SuccessMetrics        map[string]any
	PresentationVersion   string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Timeframe == "" {
		errs = append(errs, domain.FieldError{Field: "timeframe", Message: "required"})
	}
	if i.StrategicTheme == "" {
		errs = append(errs, domain.FieldError{Field: "strategic_theme", Message: "required"})
	}
	if i.StakeholderVisibility != "" && !i.StakeholderVisibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stakeholder_visibility", Message: "unknown visibility"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a patch for a roadmap. Nil fields are left unchanged.
type UpdateInput struct {
	Name                  *string
	Timeframe             *string
	StrategicTheme        *string
	NextReviewDate        *time.Time
	StakeholderVisibility *domain.Visibility
	Status                *domain.RoadmapStatus
	Dependencies          *[]string
	RiskAssessment        *string
	SuccessMetrics        map[string]any
	PresentationVersion   *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Timeframe != nil && *i.Timeframe == "" {
		errs = append(errs, domain.FieldError{Field: "timeframe", Message: "must not be empty"})
	}
	if i.StrategicTheme != nil && *i.StrategicTheme == "" {
		errs = append(errs, domain.FieldError{Field: "strategic_theme", Message: "must not be empty"})
	}
	if i.StakeholderVisibility != nil && !i.StakeholderVisibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stakeholder_visibility", Message: "unknown visibility"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// changes builds the change-log payload from the fields the patch sets.
func (i UpdateInput) changes() map[string]any {
	ch := make(map[string]any)
	if i.Name != nil {
		ch["name"] = *i.Name
	}
	if i.Timeframe != nil {
		ch["timeframe"] = *i.Timeframe
	}
	if i.StrategicTheme != nil {
		ch["strategic_theme"] = *i.StrategicTheme
	}
	if i.NextReviewDate != nil {
		ch["next_review_date"] = i.NextReviewDate.Format(time.RFC3339)
	}
	if i.StakeholderVisibility != nil {
		ch["stakeholder_visibility"] = i.StakeholderVisibility.String()
	}
	if i.Status != nil {
		ch["status"] = i.Status.String()
	}
	if i.Dependencies != nil {
		ch["dependencies"] = *i.Dependencies
	}
	if i.RiskAssessment != nil {
		ch["risk_assessment"] = *i.RiskAssessment
	}
	if i.SuccessMetrics != nil {
		ch["success_metrics"] = i.SuccessMetrics
	}
	if i.PresentationVersion != nil {
		ch["presentation_version"] = *i.PresentationVersion
	}
	return ch
}

// ListInput holds parameters for listing roadmaps.
type ListInput struct {
	Status *domain.RoadmapStatus
	Theme  *string
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
