// Package roadmap implements the Roadmap repository using PostgreSQL.
// The roadmap change log is a JSONB array column; appends happen inside the
// same UPDATE statement as the field mutation, so a change-log entry can
// never be lost or duplicated relative to its mutation.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides roadmap persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new roadmap repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `
	r.id, r.ref_id, r.name, r.timeframe, r.strategic_theme, r.next_review_date,
	r.stakeholder_visibility, r.status, r.dependencies, r.risk_assessment,
	r.success_metrics, r.presentation_version, r.change_log,
	r.created_by, COALESCE(u.name, ''), r.approved_by, COALESCE(a.name, ''),
	r.approval_date, r.last_updated_at, r.created_at`

const joinUsers = ` FROM roadmaps r
	LEFT JOIN users u ON r.created_by = u.id
	LEFT JOIN users a ON r.approved_by = a.id`

// Create inserts a new roadmap with an initial "created" change-log entry.
func (r *Repo) Create(ctx context.Context, rm *domain.Roadmap) (*domain.Roadmap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metricsJSON, err := json.Marshal(orEmptyMap(rm.SuccessMetrics))
	if err != nil {
		return nil, fmt.Errorf("roadmap marshal success_metrics: %w", err)
	}
	logJSON, err := json.Marshal(rm.ChangeLog)
	if err != nil {
		return nil, fmt.Errorf("roadmap marshal change_log: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO roadmaps (
			id, ref_id, name, timeframe, strategic_theme, next_review_date,
			stakeholder_visibility, status, dependencies, risk_assessment,
			success_metrics, presentation_version, change_log, created_by,
			last_updated_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		rm.ID, rm.RefID, rm.Name, rm.Timeframe, rm.StrategicTheme, rm.NextReviewDate,
		rm.StakeholderVisibility.String(), rm.Status.String(), orEmptySlice(rm.Dependencies),
		rm.RiskAssessment, metricsJSON, rm.PresentationVersion, logJSON, rm.CreatedBy,
		rm.LastUpdatedAt, rm.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "roadmap", rm.ID)
	}

	return r.GetByID(ctx, rm.ID)
}

// GetByID returns a roadmap by primary key, with creator/approver names joined.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT`+selectColumns+joinUsers+` WHERE r.id = $1`, id)

	rm, err := scanRoadmap(row)
	if err != nil {
		return nil, postgres.MapError(err, "roadmap", id)
	}
	return rm, nil
}

// Filter holds list filters for roadmaps, combined with AND.
type Filter struct {
	Status *domain.RoadmapStatus
	Theme  *string // ILIKE substring match on strategic_theme
	Limit  int
	Offset int
}

// List returns roadmaps ordered by created_at DESC plus the total count
// matching the same filters.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Roadmap, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"r.status": f.Status.String()})
	}
	if f.Theme != nil {
		where = append(where, sq.ILike{"r.strategic_theme": "%" + *f.Theme + "%"})
	}

	sql, args, err := psql.Select("COUNT(*)").From("roadmaps r").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build roadmap count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "roadmap", uuid.Nil)
	}

	sql, args, err = psql.
		Select(selectColumns).
		From("roadmaps r").
		LeftJoin("users u ON r.created_by = u.id").
		LeftJoin("users a ON r.approved_by = a.id").
		Where(where).
		OrderBy("r.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build roadmap list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "roadmap", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Roadmap
	for rows.Next() {
		rm, err := scanRoadmap(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan roadmap row: %w", err)
		}
		items = append(items, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "roadmap", uuid.Nil)
	}

	return items, total, nil
}

// UpdateParams is a patch: nil fields keep their stored values (COALESCE).
type UpdateParams struct {
	Name                  *string
	Timeframe             *string
	StrategicTheme        *string
	NextReviewDate        *time.Time
	StakeholderVisibility *domain.Visibility
	Status                *domain.RoadmapStatus
	Dependencies          *[]string
	RiskAssessment        *string
	SuccessMetrics        map[string]any // nil means "not provided"
	PresentationVersion   *string
}

// Update applies a patch and appends one change-log entry in the same
// statement.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p UpdateParams, entry domain.ChangeLogEntry) (*domain.Roadmap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("roadmap marshal change_log entry: %w", err)
	}

	var metricsJSON []byte
	if p.SuccessMetrics != nil {
		metricsJSON, err = json.Marshal(p.SuccessMetrics)
		if err != nil {
			return nil, fmt.Errorf("roadmap marshal success_metrics: %w", err)
		}
	}

	tag, err := q.Exec(ctx, `
		UPDATE roadmaps SET
			name = COALESCE($1, name),
			timeframe = COALESCE($2, timeframe),
			strategic_theme = COALESCE($3, strategic_theme),
			next_review_date = COALESCE($4, next_review_date),
			stakeholder_visibility = COALESCE($5, stakeholder_visibility),
			status = COALESCE($6, status),
			dependencies = COALESCE($7, dependencies),
			risk_assessment = COALESCE($8, risk_assessment),
			success_metrics = COALESCE($9, success_metrics),
			presentation_version = COALESCE($10, presentation_version),
			change_log = change_log || $11::jsonb,
			last_updated_at = now()
		WHERE id = $12`,
		p.Name, p.Timeframe, p.StrategicTheme, p.NextReviewDate,
		visibilityArg(p.StakeholderVisibility), statusArg(p.Status),
		p.Dependencies, p.RiskAssessment, metricsJSON, p.PresentationVersion,
		entryJSON, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "roadmap", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("roadmap %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Approve marks the roadmap approved, stamps the approver, and appends the
// change-log entry in the same statement. The already-approved precondition
// is checked by the service before calling.
func (r *Repo) Approve(ctx context.Context, id, approvedBy uuid.UUID, entry domain.ChangeLogEntry) (*domain.Roadmap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("roadmap marshal change_log entry: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE roadmaps SET
			status = 'approved',
			approved_by = $1,
			approval_date = now(),
			change_log = change_log || $2::jsonb,
			last_updated_at = now()
		WHERE id = $3`,
		approvedBy, entryJSON, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "roadmap", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("roadmap %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// LinkedRequirementCount returns the number of requirements attached to the
// roadmap. Used for the delete guard.
func (r *Repo) LinkedRequirementCount(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM requirements WHERE roadmap_id = $1`, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "roadmap", id)
	}
	return n, nil
}

// Delete removes a roadmap.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM roadmaps WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "roadmap", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("roadmap %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoadmap(row rowScanner) (*domain.Roadmap, error) {
	var (
		rm          domain.Roadmap
		visibility  string
		status      string
		metricsJSON []byte
		logJSON     []byte
	)

	err := row.Scan(
		&rm.ID, &rm.RefID, &rm.Name, &rm.Timeframe, &rm.StrategicTheme, &rm.NextReviewDate,
		&visibility, &status, &rm.Dependencies, &rm.RiskAssessment,
		&metricsJSON, &rm.PresentationVersion, &logJSON,
		&rm.CreatedBy, &rm.CreatedByName, &rm.ApprovedBy, &rm.ApprovedByName,
		&rm.ApprovalDate, &rm.LastUpdatedAt, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.StakeholderVisibility = domain.Visibility(visibility)
	rm.Status = domain.RoadmapStatus(status)

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &rm.SuccessMetrics); err != nil {
			return nil, fmt.Errorf("roadmap %s unmarshal success_metrics: %w", rm.ID, err)
		}
	}
	if len(logJSON) > 0 {
		if err := json.Unmarshal(logJSON, &rm.ChangeLog); err != nil {
			return nil, fmt.Errorf("roadmap %s unmarshal change_log: %w", rm.ID, err)
		}
	}

	return &rm, nil
}

// ---------------------------------------------------------------------------
// Arg helpers: typed pointers → nullable SQL args
// ---------------------------------------------------------------------------

func statusArg(s *domain.RoadmapStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func visibilityArg(v *domain.Visibility) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
