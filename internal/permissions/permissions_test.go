package permissions

import (
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// TestCan_Matrix exercises every role against every guarded action.
func TestCan_Matrix(t *testing.T) {
	t.Parallel()

	managerOnly := []Action{
		ActionCreateRoadmap, ActionEditRoadmap, ActionDeleteRoadmap, ActionApproveRoadmap,
		ActionCreateRequirement, ActionEditRequirement, ActionDeleteRequirement, ActionValidateRequirement,
		ActionEditIdea, ActionDeleteIdea, ActionTriageIdea, ActionPromoteIdea,
		ActionViewAnalytics,
	}
	everyoneActions := []Action{ActionSubmitIdea, ActionComment, ActionUploadAttachment, ActionView}

	allRoles := []domain.Role{
		domain.RoleAdmin, domain.RoleProductManager, domain.RoleDeveloper,
		domain.RoleStakeholder, domain.RoleViewer,
	}
	elevated := map[domain.Role]bool{domain.RoleAdmin: true, domain.RoleProductManager: true}

	for _, role := range allRoles {
		for _, action := range managerOnly {
			if got := Can(role, action); got != elevated[role] {
				t.Errorf("Can(%s, %s) = %v, want %v", role, action, got, elevated[role])
			}
		}
		for _, action := range everyoneActions {
			if !Can(role, action) {
				t.Errorf("Can(%s, %s) = false, want true", role, action)
			}
		}
		wantExport := role == domain.RoleAdmin || role == domain.RoleProductManager || role == domain.RoleDeveloper
		if got := Can(role, ActionExport); got != wantExport {
			t.Errorf("Can(%s, export) = %v, want %v", role, got, wantExport)
		}
	}
}

func TestCan_UnknownRoleOrAction(t *testing.T) {
	t.Parallel()

	if Can("superuser", ActionCreateRoadmap) {
		t.Error("unknown role must be denied")
	}
	if Can("", ActionView) {
		t.Error("empty role must be denied")
	}
	if Can(domain.RoleAdmin, Action("roadmap.publish")) {
		t.Error("unknown action must be denied")
	}
}

func TestCanDeleteAttachment(t *testing.T) {
	t.Parallel()

	uploader := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		role     domain.Role
		uploader uuid.UUID
		caller   uuid.UUID
		want     bool
	}{
		{"admin deletes anyone's", domain.RoleAdmin, uploader, other, true},
		{"pm deletes anyone's", domain.RoleProductManager, uploader, other, true},
		{"viewer deletes own", domain.RoleViewer, uploader, uploader, true},
		{"developer deletes own", domain.RoleDeveloper, uploader, uploader, true},
		{"viewer deletes other's", domain.RoleViewer, uploader, other, false},
		{"stakeholder deletes other's", domain.RoleStakeholder, uploader, other, false},
		{"unknown role own upload", domain.Role("ghost"), uploader, uploader, false},
		{"nil caller", domain.RoleViewer, uuid.Nil, uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanDeleteAttachment(tt.role, tt.uploader, tt.caller); got != tt.want {
				t.Errorf("CanDeleteAttachment(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
