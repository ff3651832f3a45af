// Package comment implements the Comment repository using PostgreSQL.
// Comments are immutable: the only operations are insert and list.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `
	c.id, c.entity_type, c.entity_id, c.user_id, COALESCE(u.name, ''),
	c.content, c.created_at`

// Create inserts a comment and returns it with the author name joined.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO comments (id, entity_type, entity_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Entity.Kind.String(), c.Entity.ID, c.AuthorID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}

	row := q.QueryRow(ctx, `SELECT`+selectColumns+`
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.id = $1`, c.ID)

	created, err := scanComment(row)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// ListByEntity returns all comments on an entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT`+selectColumns+`
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.entity_type = $1 AND c.entity_id = $2
		ORDER BY c.created_at DESC`,
		ref.Kind.String(), ref.ID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	var kind string
	err := row.Scan(&c.ID, &kind, &c.Entity.ID, &c.AuthorID, &c.AuthorName, &c.Content, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Entity.Kind = domain.EntityKind(kind)
	return &c, nil
}
