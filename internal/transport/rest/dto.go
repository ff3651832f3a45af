package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type roadmapResponse struct {
	ID                    uuid.UUID                `json:"id"`
	RefID                 string                   `json:"ref_id"`
	Name                  string                   `json:"name"`
	Timeframe             string                   `json:"timeframe"`
	StrategicTheme        string                   `json:"strategic_theme"`
	NextReviewDate        *time.Time               `json:"next_review_date,omitempty"`
	StakeholderVisibility string                   `json:"stakeholder_visibility"`
	Status                string                   `json:"status"`
	Dependencies          []string                 `json:"dependencies"`
	RiskAssessment        string                   `json:"risk_assessment,omitempty"`
	SuccessMetrics        map[string]any           `json:"success_metrics"`
	PresentationVersion   string                   `json:"presentation_version"`
	ChangeLog             []domain.ChangeLogEntry  `json:"change_log"`
	CreatedBy             uuid.UUID                `json:"created_by"`
	CreatedByName         string                   `json:"created_by_name,omitempty"`
	ApprovedBy            *uuid.UUID               `json:"approved_by,omitempty"`
	ApprovedByName        string                   `json:"approved_by_name,omitempty"`
	ApprovalDate          *time.Time               `json:"approval_date,omitempty"`
	LastUpdatedAt         time.Time                `json:"last_updated_at"`
	CreatedAt             time.Time                `json:"created_at"`
}

func toRoadmapResponse(rm *domain.Roadmap) roadmapResponse {
	return roadmapResponse{
		ID:                    rm.ID,
		RefID:                 rm.RefID,
		Name:                  rm.Name,
		Timeframe:             rm.Timeframe,
		StrategicTheme:        rm.StrategicTheme,
		NextReviewDate:        rm.NextReviewDate,
		StakeholderVisibility: rm.StakeholderVisibility.String(),
		Status:                rm.Status.String(),
		Dependencies:          rm.Dependencies,
		RiskAssessment:        rm.RiskAssessment,
		SuccessMetrics:        rm.SuccessMetrics,
		PresentationVersion:   rm.PresentationVersion,
		ChangeLog:             rm.ChangeLog,
		CreatedBy:             rm.CreatedBy,
		CreatedByName:         rm.CreatedByName,
		ApprovedBy:            rm.ApprovedBy,
		ApprovedByName:        rm.ApprovedByName,
		ApprovalDate:          rm.ApprovalDate,
		LastUpdatedAt:         rm.LastUpdatedAt,
		CreatedAt:             rm.CreatedAt,
	}
}

func toRoadmapResponses(items []domain.Roadmap) []roadmapResponse {
	out := make([]roadmapResponse, 0, len(items))
	for i := range items {
		out = append(out, toRoadmapResponse(&items[i]))
	}
	return out
}

type requirementResponse struct {
	ID                     uuid.UUID  `json:"id"`
	RefID                  string     `json:"ref_id"`
	Type                   string     `json:"requirement_type"`
	UserStory              string     `json:"user_story"`
	AcceptanceCriteria     string     `json:"acceptance_criteria"`
	Priority               string     `json:"priority"`
	Complexity             string     `json:"complexity"`
	Status                 string     `json:"status"`
	RelatedFeatures        []string   `json:"related_features"`
	TechnicalConstraints   string     `json:"technical_constraints,omitempty"`
	SecurityConsiderations string     `json:"security_considerations,omitempty"`
	ComplianceNeeds        string     `json:"compliance_needs,omitempty"`
	MockupReferences       []string   `json:"mockup_references"`
	RoadmapID              *uuid.UUID `json:"roadmap_id,omitempty"`
	RoadmapName            string     `json:"roadmap_name,omitempty"`
	CreatedBy              uuid.UUID  `json:"created_by"`
	CreatedByName          string     `json:"created_by_name,omitempty"`
	ValidatedBy            *uuid.UUID `json:"validated_by,omitempty"`
	ValidatedByName        string     `json:"validated_by_name,omitempty"`
	ValidationDate         *time.Time `json:"validation_date,omitempty"`
	LastUpdatedAt          time.Time  `json:"last_updated_at"`
	CreatedAt              time.Time  `json:"created_at"`
}

func toRequirementResponse(req *domain.Requirement) requirementResponse {
	return requirementResponse{
		ID:                     req.ID,
		RefID:                  req.RefID,
		Type:                   req.Type.String(),
		UserStory:              req.UserStory,
		AcceptanceCriteria:     req.AcceptanceCriteria,
		Priority:               req.Priority.String(),
		Complexity:             req.Complexity.String(),
		Status:                 req.Status.String(),
		RelatedFeatures:        req.RelatedFeatures,
		TechnicalConstraints:   req.TechnicalConstraints,
		SecurityConsiderations: req.SecurityConsiderations,
		ComplianceNeeds:        req.ComplianceNeeds,
		MockupReferences:       req.MockupReferences,
		RoadmapID:              req.RoadmapID,
		RoadmapName:            req.RoadmapName,
		CreatedBy:              req.CreatedBy,
		CreatedByName:          req.CreatedByName,
		ValidatedBy:            req.ValidatedBy,
		ValidatedByName:        req.ValidatedByName,
		ValidationDate:         req.ValidationDate,
		LastUpdatedAt:          req.LastUpdatedAt,
		CreatedAt:              req.CreatedAt,
	}
}

func toRequirementResponses(items []domain.Requirement) []requirementResponse {
	out := make([]requirementResponse, 0, len(items))
	for i := range items {
		out = append(out, toRequirementResponse(&items[i]))
	}
	return out
}

type ideaResponse struct {
	ID                    uuid.UUID  `json:"id"`
	RefID                 string     `json:"ref_id"`
	Name                  string     `json:"name"`
	ProblemStatement      string     `json:"problem_statement"`
	TargetCustomer        string     `json:"target_customer"`
	EstimatedImpact       string     `json:"estimated_impact"`
	Feasibility           string     `json:"feasibility"`
	AlignmentWithStrategy string     `json:"alignment_with_strategy,omitempty"`
	CompetitiveAdvantage  string     `json:"competitive_advantage,omitempty"`
	RelatedProducts       []string   `json:"related_products"`
	TriageStatus          string     `json:"triage_status"`
	NextSteps             string     `json:"next_steps,omitempty"`
	SubmittedBy           uuid.UUID  `json:"submitted_by"`
	SubmittedByName       string     `json:"submitted_by_name,omitempty"`
	SubmissionDate        time.Time  `json:"submission_date"`
	TriagedBy             *uuid.UUID `json:"triaged_by,omitempty"`
	TriagedByName         string     `json:"triaged_by_name,omitempty"`
	TriageDate            *time.Time `json:"triage_date,omitempty"`
	RequirementID         *uuid.UUID `json:"requirement_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func toIdeaResponse(in *domain.Idea) ideaResponse {
	return ideaResponse{
		ID:                    in.ID,
		RefID:                 in.RefID,
		Name:                  in.Name,
		ProblemStatement:      in.ProblemStatement,
		TargetCustomer:        in.TargetCustomer,
		EstimatedImpact:       in.EstimatedImpact.String(),
		Feasibility:           in.Feasibility.String(),
		AlignmentWithStrategy: in.AlignmentWithStrategy,
		CompetitiveAdvantage:  in.CompetitiveAdvantage,
		RelatedProducts:       in.RelatedProducts,
		TriageStatus:          in.TriageStatus.String(),
		NextSteps:             in.NextSteps,
		SubmittedBy:           in.SubmittedBy,
		SubmittedByName:       in.SubmittedByName,
		SubmissionDate:        in.SubmissionDate,
		TriagedBy:             in.TriagedBy,
		TriagedByName:         in.TriagedByName,
		TriageDate:            in.TriageDate,
		RequirementID:         in.RequirementID,
		CreatedAt:             in.CreatedAt,
	}
}

func toIdeaResponses(items []domain.Idea) []ideaResponse {
	out := make([]ideaResponse, 0, len(items))
	for i := range items {
		out = append(out, toIdeaResponse(&items[i]))
	}
	return out
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		EntityType: c.Entity.Kind.String(),
		EntityID:   c.Entity.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

func toCommentResponses(items []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(items))
	for i := range items {
		out = append(out, toCommentResponse(&items[i]))
	}
	return out
}

type attachmentResponse struct {
	ID             uuid.UUID `json:"id"`
	EntityType     string    `json:"entity_type"`
	EntityID       uuid.UUID `json:"entity_id"`
	FileName       string    `json:"file_name"`
	FileURL        string    `json:"file_url"`
	UploadedBy     uuid.UUID `json:"uploaded_by"`
	UploadedByName string    `json:"uploaded_by_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toAttachmentResponse(a *domain.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:             a.ID,
		EntityType:     a.Entity.Kind.String(),
		EntityID:       a.Entity.ID,
		FileName:       a.FileName,
		FileURL:        a.FileURL,
		UploadedBy:     a.UploadedBy,
		UploadedByName: a.UploadedByName,
		CreatedAt:      a.CreatedAt,
	}
}

func toAttachmentResponses(items []domain.Attachment) []attachmentResponse {
	out := make([]attachmentResponse, 0, len(items))
	for i := range items {
		out = append(out, toAttachmentResponse(&items[i]))
	}
	return out
}

type activityResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	UserName   string         `json:"user_name,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toActivityResponse(rec *domain.ActivityRecord) activityResponse {
	return activityResponse{
		ID:         rec.ID,
		UserID:     rec.UserID,
		UserName:   rec.UserName,
		Action:     rec.Action.String(),
		EntityType: rec.EntityType.String(),
		EntityID:   rec.EntityID,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
}

func toActivityResponses(items []domain.ActivityRecord) []activityResponse {
	out := make([]activityResponse, 0, len(items))
	for i := range items {
		out = append(out, toActivityResponse(&items[i]))
	}
	return out
}

type notificationResponse struct {
	ID         uuid.UUID `json:"id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Read       bool      `json:"read"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		Message:    n.Message,
		Type:       n.Type.String(),
		Read:       n.Read,
		EntityType: n.EntityType.String(),
		EntityID:   n.EntityID,
		CreatedAt:  n.CreatedAt,
	}
}

func toNotificationResponses(items []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(items))
	for i := range items {
		out = append(out, toNotificationResponse(&items[i]))
	}
	return out
}
