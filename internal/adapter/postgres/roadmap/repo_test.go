package roadmap_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	"github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

func newRepo(t *testing.T) (*roadmap.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return roadmap.New(pool), pool
}

func buildRoadmap(createdBy uuid.UUID) *domain.Roadmap {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Roadmap{
		ID:                    uuid.New(),
		RefID:                 domain.NewRoadmapRefID(),
		Name:                  "Q3 Platform Roadmap",
		Timeframe:             "2026-H2",
		StrategicTheme:        "platform reliability",
		StakeholderVisibility: domain.VisibilityInternal,
		Status:                domain.RoadmapStatusPlanning,
		Dependencies:          []string{"billing migration"},
		SuccessMetrics:        map[string]any{"uptime": "99.9%"},
		PresentationVersion:   "1.0",
		ChangeLog: []domain.ChangeLogEntry{
			{Action: domain.ChangeLogCreated, Timestamp: now, UserID: createdBy},
		},
		CreatedBy:     createdBy,
		LastUpdatedAt: now,
		CreatedAt:     now,
	}
}

func TestRepo_Create_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool, domain.RoleProductManager)

	input := buildRoadmap(user.ID)
	got, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
	if got.RefID != input.RefID {
		t.Errorf("RefID mismatch: got %s, want %s", got.RefID, input.RefID)
	}
	if got.CreatedByName != user.Name {
		t.Errorf("CreatedByName mismatch: got %q, want %q", got.CreatedByName, user.Name)
	}
	if got.Status != domain.RoadmapStatusPlanning {
		t.Errorf("Status mismatch: got %s", got.Status)
	}
	if len(got.ChangeLog) != 1 || got.ChangeLog[0].Action != domain.ChangeLogCreated {
		t.Errorf("expected single created change-log entry, got %+v", got.ChangeLog)
	}
	if got.SuccessMetrics["uptime"] != "99.9%" {
		t.Errorf("SuccessMetrics mismatch: got %v", got.SuccessMetrics)
	}
	if len(got.Dependencies) != 1 || got.Dependencies[0] != "billing migration" {
		t.Errorf("Dependencies mismatch: got %v", got.Dependencies)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Update_PatchAndChangeLogAppend(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool, domain.RoleProductManager)

	created, err := repo.Create(ctx, buildRoadmap(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Q3 Platform Roadmap v2"
	entry := domain.ChangeLogEntry{
		Action:    domain.ChangeLogUpdated,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		UserID:    user.ID,
		Changes:   map[string]any{"name": newName},
	}

	got, err := repo.Update(ctx, created.ID, roadmap.UpdateParams{Name: &newName}, entry)
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if got.Name != newName {
		t.Errorf("Name not patched: got %q", got.Name)
	}
	// Untouched fields keep their values.
	if got.Timeframe != created.Timeframe {
		t.Errorf("Timeframe changed unexpectedly: got %q", got.Timeframe)
	}
	if got.StrategicTheme != created.StrategicTheme {
		t.Errorf("StrategicTheme changed unexpectedly: got %q", got.StrategicTheme)
	}
	// Change log grew by exactly one and kept the original entry.
	if len(got.ChangeLog) != 2 {
		t.Fatalf("expected 2 change-log entries, got %d", len(got.ChangeLog))
	}
	if got.ChangeLog[0].Action != domain.ChangeLogCreated {
		t.Errorf("first entry rewritten: got %+v", got.ChangeLog[0])
	}
	if got.ChangeLog[1].Action != domain.ChangeLogUpdated {
		t.Errorf("appended entry action: got %q", got.ChangeLog[1].Action)
	}
	if got.ChangeLog[1].Changes["name"] != newName {
		t.Errorf("appended entry changes: got %v", got.ChangeLog[1].Changes)
	}
	if !got.LastUpdatedAt.After(created.LastUpdatedAt) {
		t.Errorf("LastUpdatedAt not bumped: %s vs %s", got.LastUpdatedAt, created.LastUpdatedAt)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	name := "ghost"
	_, err := repo.Update(context.Background(), uuid.New(),
		roadmap.UpdateParams{Name: &name},
		domain.ChangeLogEntry{Action: domain.ChangeLogUpdated, Timestamp: time.Now().UTC(), UserID: uuid.New()},
	)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Approve_StampsApprover(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	pm := testhelper.SeedUser(t, pool, domain.RoleProductManager)
	admin := testhelper.SeedUser(t, pool, domain.RoleAdmin)

	created, err := repo.Create(ctx, buildRoadmap(pm.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	entry := domain.ChangeLogEntry{
		Action:    domain.ChangeLogApproved,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		UserID:    admin.ID,
	}
	got, err := repo.Approve(ctx, created.ID, admin.ID, entry)
	if err != nil {
		t.Fatalf("Approve: unexpected error: %v", err)
	}

	if got.Status != domain.RoadmapStatusApproved {
		t.Errorf("Status: got %s, want approved", got.Status)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != admin.ID {
		t.Errorf("ApprovedBy: got %v, want %s", got.ApprovedBy, admin.ID)
	}
	if got.ApprovedByName != admin.Name {
		t.Errorf("ApprovedByName: got %q, want %q", got.ApprovedByName, admin.Name)
	}
	if got.ApprovalDate == nil {
		t.Error("ApprovalDate should be set")
	}
	if len(got.ChangeLog) != 2 || got.ChangeLog[1].Action != domain.ChangeLogApproved {
		t.Errorf("change log after approve: %+v", got.ChangeLog)
	}
}

func TestRepo_List_FilterByStatus(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool, domain.RoleProductManager)

	created, err := repo.Create(ctx, buildRoadmap(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := domain.RoadmapStatusPlanning
	items, total, err := repo.List(ctx, roadmap.Filter{Status: &status, Limit: 100})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if total < 1 {
		t.Fatalf("expected total >= 1, got %d", total)
	}

	found := false
	for _, it := range items {
		if it.Status != domain.RoadmapStatusPlanning {
			t.Errorf("filter leaked status %s", it.Status)
		}
		if it.ID == created.ID {
			found = true
		}
	}
	if !found && total <= 100 {
		t.Error("created roadmap missing from filtered list")
	}
}

func TestRepo_Delete_AndLinkedRequirementCount(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool, domain.RoleProductManager)

	created, err := repo.Create(ctx, buildRoadmap(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Link a requirement to the roadmap directly.
	req := testhelper.SeedRequirement(t, pool, user.ID)
	if _, err := pool.Exec(ctx, `UPDATE requirements SET roadmap_id = $1 WHERE id = $2`, created.ID, req.ID); err != nil {
		t.Fatalf("link requirement: %v", err)
	}

	n, err := repo.LinkedRequirementCount(ctx, created.ID)
	if err != nil {
		t.Fatalf("LinkedRequirementCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 linked requirement, got %d", n)
	}

	// Unlink, then delete succeeds.
	if _, err := pool.Exec(ctx, `UPDATE requirements SET roadmap_id = NULL WHERE id = $1`, req.ID); err != nil {
		t.Fatalf("unlink requirement: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err = repo.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
