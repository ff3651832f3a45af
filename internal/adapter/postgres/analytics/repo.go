// Package analytics implements read-only aggregate queries over the product
// data for the dashboard and workflow reports.
package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides aggregate queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Totals returns the row counts of roadmaps, requirements, and ideas in a
// single round trip.
func (r *Repo) Totals(ctx context.Context) (roadmaps, requirements, ideas int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM roadmaps),
		(SELECT COUNT(*) FROM requirements),
		(SELECT COUNT(*) FROM ideas)`,
	).Scan(&roadmaps, &requirements, &ideas)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("analytics totals: %w", err)
	}
	return roadmaps, requirements, ideas, nil
}

// RoadmapsByStatus returns the status → count breakdown of roadmaps.
func (r *Repo) RoadmapsByStatus(ctx context.Context) (map[string]int, error) {
	return r.groupCount(ctx, "roadmaps", "status")
}

// RequirementsByStatus returns the status → count breakdown of requirements.
func (r *Repo) RequirementsByStatus(ctx context.Context) (map[string]int, error) {
	return r.groupCount(ctx, "requirements", "status")
}

// IdeasByTriageStatus returns the triage_status → count breakdown of ideas.
func (r *Repo) IdeasByTriageStatus(ctx context.Context) (map[string]int, error) {
	return r.groupCount(ctx, "ideas", "triage_status")
}

// RequirementsByPriority returns the priority → count breakdown.
func (r *Repo) RequirementsByPriority(ctx context.Context) (map[string]int, error) {
	return r.groupCount(ctx, "requirements", "priority")
}

// IdeasByImpact returns the estimated_impact → count breakdown.
func (r *Repo) IdeasByImpact(ctx context.Context) (map[string]int, error) {
	return r.groupCount(ctx, "ideas", "estimated_impact")
}

// RoadmapsByMonth returns creation counts bucketed by month for the last
// months months, oldest bucket first. Empty months are omitted.
func (r *Repo) RoadmapsByMonth(ctx context.Context, months int) ([]domain.MonthCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*)
		FROM roadmaps
		WHERE created_at >= date_trunc('month', now()) - make_interval(months => $1 - 1)
		GROUP BY month
		ORDER BY month`, months)
	if err != nil {
		return nil, fmt.Errorf("analytics roadmaps by month: %w", err)
	}
	defer rows.Close()

	var buckets []domain.MonthCount
	for rows.Next() {
		var b domain.MonthCount
		if err := rows.Scan(&b.Month, &b.Count); err != nil {
			return nil, fmt.Errorf("scan month bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics roadmaps by month: %w", err)
	}
	return buckets, nil
}

// FunnelCounts returns the terminal-state counts used for completion rates:
// completed roadmaps, completed requirements, and promoted ideas.
func (r *Repo) FunnelCounts(ctx context.Context) (completedRoadmaps, completedRequirements, promotedIdeas int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM roadmaps WHERE status = 'completed'),
		(SELECT COUNT(*) FROM requirements WHERE status = 'completed'),
		(SELECT COUNT(*) FROM ideas WHERE requirement_id IS NOT NULL)`,
	).Scan(&completedRoadmaps, &completedRequirements, &promotedIdeas)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("analytics funnel counts: %w", err)
	}
	return completedRoadmaps, completedRequirements, promotedIdeas, nil
}

// groupCount runs GROUP BY column over table. Both identifiers come from the
// fixed call sites above, never from user input.
func (r *Repo) groupCount(ctx context.Context, table, column string) (map[string]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s GROUP BY %s`, column, table, column))
	if err != nil {
		return nil, fmt.Errorf("analytics group count %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan group count row: %w", err)
		}
		counts[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics group count %s.%s: %w", table, column, err)
	}
	return counts, nil
}
