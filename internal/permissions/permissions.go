// Package permissions maps guarded actions to allowed roles. Predicates are
// total: an unknown action or role denies.
package permissions

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Action is a guarded operation name.
type Action string

const (
	ActionCreateRoadmap       Action = "roadmap.create"
	ActionEditRoadmap         Action = "roadmap.edit"
	ActionDeleteRoadmap       Action = "roadmap.delete"
	ActionApproveRoadmap      Action = "roadmap.approve"
	ActionCreateRequirement   Action = "requirement.create"
	ActionEditRequirement     Action = "requirement.edit"
	ActionDeleteRequirement   Action = "requirement.delete"
	ActionValidateRequirement Action = "requirement.validate"
	ActionSubmitIdea          Action = "idea.submit"
	ActionEditIdea            Action = "idea.edit"
	ActionDeleteIdea          Action = "idea.delete"
	ActionTriageIdea          Action = "idea.triage"
	ActionPromoteIdea         Action = "idea.promote"
	ActionComment             Action = "comment.create"
	ActionUploadAttachment    Action = "attachment.upload"
	ActionDeleteAttachment    Action = "attachment.delete"
	ActionViewAnalytics       Action = "analytics.view"
	ActionExport              Action = "export"
	ActionView                Action = "view"
)

var (
	managers = []domain.Role{domain.RoleAdmin, domain.RoleProductManager}
	everyone = []domain.Role{
		domain.RoleAdmin, domain.RoleProductManager, domain.RoleDeveloper,
		domain.RoleStakeholder, domain.RoleViewer,
	}
	exporters = []domain.Role{domain.RoleAdmin, domain.RoleProductManager, domain.RoleDeveloper}
)

// allowed is the single source of truth for role-based access.
var allowed = map[Action][]domain.Role{
	ActionCreateRoadmap:       managers,
	ActionEditRoadmap:         managers,
	ActionDeleteRoadmap:       managers,
	ActionApproveRoadmap:      managers,
	ActionCreateRequirement:   managers,
	ActionEditRequirement:     managers,
	ActionDeleteRequirement:   managers,
	ActionValidateRequirement: managers,
	ActionSubmitIdea:          everyone,
	ActionEditIdea:            managers,
	ActionDeleteIdea:          managers,
	ActionTriageIdea:          managers,
	ActionPromoteIdea:         managers,
	ActionComment:             everyone,
	ActionUploadAttachment:    everyone,
	ActionDeleteAttachment:    managers, // plus uploader override, see CanDeleteAttachment
	ActionViewAnalytics:       managers,
	ActionExport:              exporters,
	ActionView:                everyone,
}

// Can reports whether role may perform action.
func Can(role domain.Role, action Action) bool {
	if !role.IsValid() {
		return false
	}
	roles, ok := allowed[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanDeleteAttachment allows elevated roles, or the uploader themselves.
func CanDeleteAttachment(role domain.Role, uploaderID, callerID uuid.UUID) bool {
	if Can(role, ActionDeleteAttachment) {
		return true
	}
	return role.IsValid() && uploaderID == callerID && callerID != uuid.Nil
}
