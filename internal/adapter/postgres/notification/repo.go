// Package notification implements the Notification repository using
// PostgreSQL. All reads and the mark-read mutation are scoped to the
// recipient, so one user can never see or mutate another user's
// notifications.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `id, user_id, message, type, read, entity_type, entity_id, created_at`

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO notifications (id, user_id, message, type, read, entity_type, entity_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.Message, n.Type.String(), n.Read,
		n.EntityType.String(), n.EntityID, n.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// ListByUser returns the recipient's notifications newest first, capped at
// limit. With unreadOnly set, read notifications are excluded.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `SELECT ` + selectColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		sql += ` AND NOT read`
	}
	sql += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := q.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var typ, entityType string
		err := rows.Scan(&n.ID, &n.UserID, &n.Message, &typ, &n.Read,
			&entityType, &n.EntityID, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		n.Type = domain.NotificationType(typ)
		n.EntityType = domain.EntityKind(entityType)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}

	return items, nil
}

// UnreadCount returns the number of unread notifications for the recipient.
func (r *Repo) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}
	return n, nil
}

// MarkRead marks a single notification read. The recipient scope in the
// WHERE clause makes a foreign notification indistinguishable from a missing
// one.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient read and
// returns how many were affected.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE notifications SET read = true WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteReadOlderThan prunes read notifications created before the cutoff.
// Used by the cleanup job.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM notifications WHERE read AND created_at < $1`, cutoff)
	if err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
