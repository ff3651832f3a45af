// Package requirement implements the Requirement repository using PostgreSQL.
package requirement

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides requirement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new requirement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `
	q.id, q.ref_id, q.requirement_type, q.user_story, q.acceptance_criteria,
	q.priority, q.complexity, q.status, q.related_features,
	q.technical_constraints, q.security_considerations, q.compliance_needs,
	q.mockup_references, q.roadmap_id, COALESCE(rm.name, ''),
	q.created_by, COALESCE(cu.name, ''), q.validated_by, COALESCE(vu.name, ''),
	q.validation_date, q.last_updated_at, q.created_at`

// Create inserts a new requirement.
func (r *Repo) Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO requirements (
			id, ref_id, requirement_type, user_story, acceptance_criteria,
			priority, complexity, status, related_features, technical_constraints,
			security_considerations, compliance_needs, mockup_references,
			roadmap_id, created_by, last_updated_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		req.ID, req.RefID, req.Type.String(), req.UserStory, req.AcceptanceCriteria,
		req.Priority.String(), req.Complexity.String(), req.Status.String(),
		orEmpty(req.RelatedFeatures), req.TechnicalConstraints,
		req.SecurityConsiderations, req.ComplianceNeeds, orEmpty(req.MockupReferences),
		req.RoadmapID, req.CreatedBy, req.LastUpdatedAt, req.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "requirement", req.ID)
	}

	return r.GetByID(ctx, req.ID)
}

// GetByID returns a requirement by primary key with joined display names.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT`+selectColumns+`
		FROM requirements q
		LEFT JOIN roadmaps rm ON q.roadmap_id = rm.id
		LEFT JOIN users cu ON q.created_by = cu.id
		LEFT JOIN users vu ON q.validated_by = vu.id
		WHERE q.id = $1`, id)

	req, err := scanRequirement(row)
	if err != nil {
		return nil, postgres.MapError(err, "requirement", id)
	}
	return req, nil
}

// Filter holds list filters for requirements, combined with AND.
type Filter struct {
	Status    *domain.RequirementStatus
	Priority  *domain.Priority
	RoadmapID *uuid.UUID
	Limit     int
	Offset    int
}

// List returns requirements ordered by created_at DESC plus the total count
// matching the same filters.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Requirement, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"q.status": f.Status.String()})
	}
	if f.Priority != nil {
		where = append(where, sq.Eq{"q.priority": f.Priority.String()})
	}
	if f.RoadmapID != nil {
		where = append(where, sq.Eq{"q.roadmap_id": *f.RoadmapID})
	}

	sql, args, err := psql.Select("COUNT(*)").From("requirements q").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build requirement count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "requirement", uuid.Nil)
	}

	sql, args, err = psql.
		Select(selectColumns).
		From("requirements q").
		LeftJoin("roadmaps rm ON q.roadmap_id = rm.id").
		LeftJoin("users cu ON q.created_by = cu.id").
		LeftJoin("users vu ON q.validated_by = vu.id").
		Where(where).
		OrderBy("q.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build requirement list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "requirement", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Requirement
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan requirement row: %w", err)
		}
		items = append(items, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "requirement", uuid.Nil)
	}

	return items, total, nil
}

// UpdateParams is a patch: nil fields keep their stored values (COALESCE).
// ClearRoadmap detaches the requirement from its roadmap; it wins over
// RoadmapID when both are set.
type UpdateParams struct {
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

// Update applies a patch and bumps last_updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ClearRoadmap {
		p.RoadmapID = nil
	}

	tag, err := q.Exec(ctx, `
		UPDATE requirements SET
			requirement_type = COALESCE($1, requirement_type),
			user_story = COALESCE($2, user_story),
			acceptance_criteria = COALESCE($3, acceptance_criteria),
			priority = COALESCE($4, priority),
			complexity = COALESCE($5, complexity),
			status = COALESCE($6, status),
			related_features = COALESCE($7, related_features),
			technical_constraints = COALESCE($8, technical_constraints),
			security_considerations = COALESCE($9, security_considerations),
			compliance_needs = COALESCE($10, compliance_needs),
			mockup_references = COALESCE($11, mockup_references),
			roadmap_id = CASE WHEN $12 THEN NULL ELSE COALESCE($13, roadmap_id) END,
			last_updated_at = now()
		WHERE id = $14`,
		enumArg(p.Type), p.UserStory, p.AcceptanceCriteria,
		enumArg(p.Priority), enumArg(p.Complexity), enumArg(p.Status),
		p.RelatedFeatures, p.TechnicalConstraints, p.SecurityConsiderations,
		p.ComplianceNeeds, p.MockupReferences, p.ClearRoadmap, p.RoadmapID, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "requirement", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("requirement %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Validate marks the requirement validated and stamps the validator. The
// already-validated precondition is checked by the service before calling.
func (r *Repo) Validate(ctx context.Context, id, validatedBy uuid.UUID) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE requirements SET
			status = 'validated',
			validated_by = $1,
			validation_date = now(),
			last_updated_at = now()
		WHERE id = $2`,
		validatedBy, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "requirement", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("requirement %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// LinkedIdeaCount returns the number of ideas promoted into this requirement.
// Used for the delete guard.
func (r *Repo) LinkedIdeaCount(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM ideas WHERE requirement_id = $1`, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "requirement", id)
	}
	return n, nil
}

// Delete removes a requirement.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "requirement", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("requirement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequirement(row rowScanner) (*domain.Requirement, error) {
	var (
		req        domain.Requirement
		reqType    string
		priority   string
		complexity string
		status     string
	)

	err := row.Scan(
		&req.ID, &req.RefID, &reqType, &req.UserStory, &req.AcceptanceCriteria,
		&priority, &complexity, &status, &req.RelatedFeatures,
		&req.TechnicalConstraints, &req.SecurityConsiderations, &req.ComplianceNeeds,
		&req.MockupReferences, &req.RoadmapID, &req.RoadmapName,
		&req.CreatedBy, &req.CreatedByName, &req.ValidatedBy, &req.ValidatedByName,
		&req.ValidationDate, &req.LastUpdatedAt, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Type = domain.RequirementType(reqType)
	req.Priority = domain.Priority(priority)
	req.Complexity = domain.Complexity(complexity)
	req.Status = domain.RequirementStatus(status)
	return &req, nil
}

// enumArg turns a typed enum pointer into a nullable SQL text arg.
func enumArg[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
