// Package notification implements best-effort user notifications. Delivery
// failures are logged and swallowed; reads and the mark-read mutation are
// recipient-scoped.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// repo defines the notification repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service implements notification operations.
type Service struct {
	log  *slog.Logger
	repo repo
	cfg  config.NotificationsConfig
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, r repo, cfg config.NotificationsConfig) *Service {
	return &Service{
		log:  logger.With("service", "notification"),
		repo: r,
		cfg:  cfg,
	}
}

// Notify creates a notification for recipientID. Errors are logged, never
// returned. Delivery is unconditional: workflow events notify the entity
// owner even when the owner performed the action themselves. Callers that
// want to spare the actor a note about their own action (comments do) decide
// that before calling.
func (s *Service) Notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, message string, entityType domain.EntityKind, entityID uuid.UUID) {
	n := &domain.Notification{
		ID:         uuid.New(),
		UserID:     recipientID,
		Message:    message,
		Type:       typ,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.log.WarnContext(ctx, "notification dropped",
			"recipient_id", recipientID.String(),
			"type", typ.String(),
			"error", err)
	}
}

// List returns the recipient's notifications newest first, capped by the
// configured list cap, plus the unread count.
func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, int, error) {
	items, err := s.repo.ListByUser(ctx, userID, unreadOnly, s.cfg.ListCap)
	if err != nil {
		return nil, 0, fmt.Errorf("notification.List: %w", err)
	}

	unread, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("notification.List unread count: %w", err)
	}

	return items, unread, nil
}

// MarkRead marks one of the caller's notifications read. Another user's
// notification reports ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks all of the caller's unread notifications read.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return n, nil
}

// Prune deletes read notifications older than the configured retention
// window and returns how many were removed.
func (s *Service) Prune(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)
	n, err := s.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("notification.Prune: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "pruned read notifications", "count", n)
	}
	return n, nil
}
