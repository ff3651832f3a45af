// Package attachment implements the Attachment repository using PostgreSQL.
package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides attachment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `
	a.id, a.entity_type, a.entity_id, a.file_name, a.file_url,
	a.uploaded_by, COALESCE(u.name, ''), a.created_at`

// Create inserts an attachment record and returns it with the uploader name
// joined.
func (r *Repo) Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO attachments (id, entity_type, entity_id, file_name, file_url, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Entity.Kind.String(), a.Entity.ID, a.FileName, a.FileURL, a.UploadedBy, a.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "attachment", a.ID)
	}

	return r.GetByID(ctx, a.ID)
}

// GetByID returns an attachment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT`+selectColumns+`
		FROM attachments a
		LEFT JOIN users u ON a.uploaded_by = u.id
		WHERE a.id = $1`, id)

	a, err := scanAttachment(row)
	if err != nil {
		return nil, postgres.MapError(err, "attachment", id)
	}
	return a, nil
}

// ListByEntity returns all attachments on an entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.Attachment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT`+selectColumns+`
		FROM attachments a
		LEFT JOIN users u ON a.uploaded_by = u.id
		WHERE a.entity_type = $1 AND a.entity_id = $2
		ORDER BY a.created_at DESC`,
		ref.Kind.String(), ref.ID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "attachment", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attachment row: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "attachment", uuid.Nil)
	}

	return items, nil
}

// Delete removes an attachment record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "attachment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attachment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttachment(row rowScanner) (*domain.Attachment, error) {
	var a domain.Attachment
	var kind string
	err := row.Scan(&a.ID, &kind, &a.Entity.ID, &a.FileName, &a.FileURL, &a.UploadedBy, &a.UploadedByName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Entity.Kind = domain.EntityKind(kind)
	return &a, nil
}
