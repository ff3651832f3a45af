// Package activity implements the append-only activity log repository using
// PostgreSQL. Records are never updated or deleted.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides activity-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `
	l.id, l.user_id, COALESCE(u.name, ''), l.action, l.entity_type, l.entity_id,
	l.changes, l.created_at`

// Create appends one record to the log.
func (r *Repo) Create(ctx context.Context, rec *domain.ActivityRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changesJSON, err := json.Marshal(orEmptyMap(rec.Changes))
	if err != nil {
		return fmt.Errorf("activity marshal changes: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.Action.String(), rec.EntityType.String(),
		rec.EntityID, changesJSON, rec.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "activity", rec.ID)
	}
	return nil
}

// Filter holds list filters for the activity log, combined with AND.
type Filter struct {
	EntityType *domain.EntityKind
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}

// List returns log records newest first plus the total count matching the
// same filters.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.ActivityRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.EntityType != nil {
		where = append(where, sq.Eq{"l.entity_type": f.EntityType.String()})
	}
	if f.EntityID != nil {
		where = append(where, sq.Eq{"l.entity_id": *f.EntityID})
	}

	sql, args, err := psql.Select("COUNT(*)").From("activity_logs l").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build activity count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "activity", uuid.Nil)
	}

	sql, args, err = psql.
		Select(selectColumns).
		From("activity_logs l").
		LeftJoin("users u ON l.user_id = u.id").
		Where(where).
		OrderBy("l.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build activity list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "activity", uuid.Nil)
	}
	defer rows.Close()

	items, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Recent returns the latest records across all entities, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT`+selectColumns+`
		FROM activity_logs l
		LEFT JOIN users u ON l.user_id = u.id
		ORDER BY l.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	defer rows.Close()

	return collect(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collect(rows pgxRows) ([]domain.ActivityRecord, error) {
	var items []domain.ActivityRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.ActivityRecord, error) {
	var (
		rec         domain.ActivityRecord
		action      string
		entityType  string
		changesJSON []byte
	)

	err := row.Scan(&rec.ID, &rec.UserID, &rec.UserName, &action, &entityType,
		&rec.EntityID, &changesJSON, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.Action = domain.ActivityAction(action)
	rec.EntityType = domain.EntityKind(entityType)
	if len(changesJSON) > 0 {
		if err := json.Unmarshal(changesJSON, &rec.Changes); err != nil {
			return nil, fmt.Errorf("activity %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return &rec, nil
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
