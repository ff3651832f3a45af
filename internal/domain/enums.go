package domain

// Role is the closed set of user roles. Roles are assigned at registration
// and never change through the API.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProductManager Role = "product_manager"
	RoleDeveloper      Role = "developer"
	RoleStakeholder    Role = "stakeholder"
	RoleViewer         Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProductManager, RoleDeveloper, RoleStakeholder, RoleViewer:
		return true
	}
	return false
}

// RoadmapStatus is the lifecycle status of a roadmap.
type RoadmapStatus string

const (
	RoadmapStatusPlanning   RoadmapStatus = "planning"
	RoadmapStatusInProgress RoadmapStatus = "in_progress"
	RoadmapStatusApproved   RoadmapStatus = "approved"
	RoadmapStatusOnHold     RoadmapStatus = "on_hold"
	RoadmapStatusCompleted  RoadmapStatus = "completed"
)

func (s RoadmapStatus) String() string { return string(s) }

func (s RoadmapStatus) IsValid() bool {
	switch s {
	case RoadmapStatusPlanning, RoadmapStatusInProgress, RoadmapStatusApproved,
		RoadmapStatusOnHold, RoadmapStatusCompleted:
		return true
	}
	return false
}

// RequirementStatus is the lifecycle status of a requirement.
type RequirementStatus string

const (
	RequirementStatusDraft         RequirementStatus = "draft"
	RequirementStatusInReview      RequirementStatus = "in_review"
	RequirementStatusValidated     RequirementStatus = "validated"
	RequirementStatusInDevelopment RequirementStatus = "in_development"
	RequirementStatusCompleted     RequirementStatus = "completed"
	RequirementStatusRejected      RequirementStatus = "rejected"
)

func (s RequirementStatus) String() string { return string(s) }

func (s RequirementStatus) IsValid() bool {
	switch s {
	case RequirementStatusDraft, RequirementStatusInReview, RequirementStatusValidated,
		RequirementStatusInDevelopment, RequirementStatusCompleted, RequirementStatusRejected:
		return true
	}
	return false
}

// RequirementType classifies a requirement.
type RequirementType string

const (
	RequirementTypeFeature     RequirementType = "feature"
	RequirementTypeEnhancement RequirementType = "enhancement"
	RequirementTypeBugfix      RequirementType = "bugfix"
	RequirementTypeTechnical   RequirementType = "technical"
)

func (t RequirementType) String() string { return string(t) }

func (t RequirementType) IsValid() bool {
	switch t {
	case RequirementTypeFeature, RequirementTypeEnhancement,
		RequirementTypeBugfix, RequirementTypeTechnical:
		return true
	}
	return false
}

// TriageStatus is the triage disposition of an idea.
type TriageStatus string

const (
	TriageStatusSubmitted   TriageStatus = "submitted"
	TriageStatusUnderReview TriageStatus = "under_review"
	TriageStatusApproved    TriageStatus = "approved"
	TriageStatusRejected    TriageStatus = "rejected"
	TriageStatusOnHold      TriageStatus = "on_hold"
)

func (s TriageStatus) String() string { return string(s) }

func (s TriageStatus) IsValid() bool {
	switch s {
	case TriageStatusSubmitted, TriageStatusUnderReview, TriageStatusApproved,
		TriageStatusRejected, TriageStatusOnHold:
		return true
	}
	return false
}

// Priority ranks a requirement.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Complexity is a t-shirt size estimate for a requirement.
type Complexity string

const (
	ComplexityXS Complexity = "xs"
	ComplexityS  Complexity = "s"
	ComplexityM  Complexity = "m"
	ComplexityL  Complexity = "l"
	ComplexityXL Complexity = "xl"
)

func (c Complexity) String() string { return string(c) }

func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityXS, ComplexityS, ComplexityM, ComplexityL, ComplexityXL:
		return true
	}
	return false
}

// ImpactLevel grades an idea's estimated impact or feasibility.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

func (l ImpactLevel) String() string { return string(l) }

func (l ImpactLevel) IsValid() bool {
	switch l {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Visibility controls who may see a roadmap outside the product team.
type Visibility string

const (
	VisibilityInternal     Visibility = "internal"
	VisibilityPublic       Visibility = "public"
	VisibilityConfidential Visibility = "confidential"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityInternal, VisibilityPublic, VisibilityConfidential:
		return true
	}
	return false
}

// EntityKind identifies the kind of entity a comment, attachment, activity
// record, or notification refers to.
type EntityKind string

const (
	EntityKindRoadmap     EntityKind = "roadmap"
	EntityKindRequirement EntityKind = "requirement"
	EntityKindIdea        EntityKind = "idea"
	EntityKindAttachment  EntityKind = "attachment"
)

func (k EntityKind) String() string { return string(k) }

// IsValid reports whether k is a kind that comments and attachments may
// reference. Attachments themselves only appear as activity subjects.
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindRoadmap, EntityKindRequirement, EntityKindIdea:
		return true
	}
	return false
}

// ActivityAction is the verb recorded in the activity log.
type ActivityAction string

const (
	ActionCreate   ActivityAction = "create"
	ActionUpdate   ActivityAction = "update"
	ActionDelete   ActivityAction = "delete"
	ActionApprove  ActivityAction = "approve"
	ActionValidate ActivityAction = "validate"
	ActionTriage   ActivityAction = "triage"
	ActionPromote  ActivityAction = "promote"
	ActionComment  ActivityAction = "comment"
	ActionUpload   ActivityAction = "upload"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionApprove, ActionValidate,
		ActionTriage, ActionPromote, ActionComment, ActionUpload:
		return true
	}
	return false
}

// NotificationType tags the reason a notification was produced.
type NotificationType string

const (
	NotifRoadmapApproved      NotificationType = "roadmap_approved"
	NotifRequirementValidated NotificationType = "requirement_validated"
	NotifIdeaTriaged          NotificationType = "idea_triaged"
	NotifIdeaPromoted         NotificationType = "idea_promoted"
	NotifNewComment           NotificationType = "new_comment"
	NotifStatusChange         NotificationType = "status_change"
)

func (t NotificationType) String() string { return string(t) }
