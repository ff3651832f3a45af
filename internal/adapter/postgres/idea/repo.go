// Package idea implements the Idea repository using PostgreSQL.
package idea

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `
	i.id, i.ref_id, i.name, i.problem_statement, i.target_customer,
	i.estimated_impact, i.feasibility, i.alignment_with_strategy,
	i.competitive_advantage, i.related_products, i.triage_status, i.next_steps,
	i.submitted_by, COALESCE(su.name, ''), i.submission_date,
	i.triaged_by, COALESCE(tu.name, ''), i.triage_date,
	i.requirement_id, i.created_at`

// Create inserts a new idea.
func (r *Repo) Create(ctx context.Context, in *domain.Idea) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO ideas (
			id, ref_id, name, problem_statement, target_customer,
			estimated_impact, feasibility, alignment_with_strategy,
			competitive_advantage, related_products, triage_status, next_steps,
			submitted_by, submission_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		in.ID, in.RefID, in.Name, in.ProblemStatement, in.TargetCustomer,
		in.EstimatedImpact.String(), in.Feasibility.String(), in.AlignmentWithStrategy,
		in.CompetitiveAdvantage, orEmpty(in.RelatedProducts), in.TriageStatus.String(),
		in.NextSteps, in.SubmittedBy, in.SubmissionDate, in.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "idea", in.ID)
	}

	return r.GetByID(ctx, in.ID)
}

// GetByID returns an idea by primary key with joined display names.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT`+selectColumns+`
		FROM ideas i
		LEFT JOIN users su ON i.submitted_by = su.id
		LEFT JOIN users tu ON i.triaged_by = tu.id
		WHERE i.id = $1`, id)

	out, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return out, nil
}

// Filter holds list filters for ideas, combined with AND.
type Filter struct {
	TriageStatus *domain.TriageStatus
	Impact       *domain.ImpactLevel
	Limit        int
	Offset       int
}

// List returns ideas ordered by submission_date DESC plus the total count
// matching the same filters.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Idea, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.TriageStatus != nil {
		where = append(where, sq.Eq{"i.triage_status": f.TriageStatus.String()})
	}
	if f.Impact != nil {
		where = append(where, sq.Eq{"i.estimated_impact": f.Impact.String()})
	}

	sql, args, err := psql.Select("COUNT(*)").From("ideas i").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build idea count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "idea", uuid.Nil)
	}

	sql, args, err = psql.
		Select(selectColumns).
		From("ideas i").
		LeftJoin("users su ON i.submitted_by = su.id").
		LeftJoin("users tu ON i.triaged_by = tu.id").
		Where(where).
		OrderBy("i.submission_date DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build idea list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "idea", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Idea
	for rows.Next() {
		out, err := scanIdea(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan idea row: %w", err)
		}
		items = append(items, *out)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "idea", uuid.Nil)
	}

	return items, total, nil
}

// UpdateParams is a patch: nil fields keep their stored values (COALESCE).
type UpdateParams struct {
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

// Update applies a patch.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE ideas SET
			name = COALESCE($1, name),
			problem_statement = COALESCE($2, problem_statement),
			target_customer = COALESCE($3, target_customer),
			estimated_impact = COALESCE($4, estimated_impact),
			feasibility = COALESCE($5, feasibility),
			alignment_with_strategy = COALESCE($6, alignment_with_strategy),
			competitive_advantage = COALESCE($7, competitive_advantage),
			related_products = COALESCE($8, related_products),
			next_steps = COALESCE($9, next_steps)
		WHERE id = $10`,
		p.Name, p.ProblemStatement, p.TargetCustomer,
		enumArg(p.EstimatedImpact), enumArg(p.Feasibility),
		p.AlignmentWithStrategy, p.CompetitiveAdvantage, p.RelatedProducts,
		p.NextSteps, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Triage sets the triage decision and stamps the reviewer. Next steps are
// optional; nil keeps the stored value.
func (r *Repo) Triage(ctx context.Context, id uuid.UUID, status domain.TriageStatus, triagedBy uuid.UUID, nextSteps *string) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE ideas SET
			triage_status = $1,
			triaged_by = $2,
			triage_date = now(),
			next_steps = COALESCE($3, next_steps)
		WHERE id = $4`,
		status.String(), triagedBy, nextSteps, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// SetPromoted links the idea to its promoted requirement and moves the triage
// status to approved. The WHERE clause refuses a second promotion so the link
// is one-shot even under concurrent requests.
func (r *Repo) SetPromoted(ctx context.Context, id, requirementID, promotedBy uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE ideas SET
			requirement_id = $1,
			triage_status = 'approved',
			triaged_by = COALESCE(triaged_by, $2),
			triage_date = COALESCE(triage_date, now())
		WHERE id = $3 AND requirement_id IS NULL`,
		requirementID, promotedBy, id,
	)
	if err != nil {
		return postgres.MapError(err, "idea", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idea %s already promoted: %w", id, domain.ErrConflict)
	}
	return nil
}

// Delete removes an idea.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "idea", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*domain.Idea, error) {
	var (
		out          domain.Idea
		impact       string
		feasibility  string
		triageStatus string
	)

	err := row.Scan(
		&out.ID, &out.RefID, &out.Name, &out.ProblemStatement, &out.TargetCustomer,
		&impact, &feasibility, &out.AlignmentWithStrategy,
		&out.CompetitiveAdvantage, &out.RelatedProducts, &triageStatus, &out.NextSteps,
		&out.SubmittedBy, &out.SubmittedByName, &out.SubmissionDate,
		&out.TriagedBy, &out.TriagedByName, &out.TriageDate,
		&out.RequirementID, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	out.EstimatedImpact = domain.ImpactLevel(impact)
	out.Feasibility = domain.ImpactLevel(feasibility)
	out.TriageStatus = domain.TriageStatus(triageStatus)
	return &out, nil
}

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
