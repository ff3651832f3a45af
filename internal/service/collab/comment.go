package collab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// CommentInput holds parameters for posting a comment.
type CommentInput struct {
	Entity  domain.EntityRef
	Content string
}

// Validate validates the comment input.
func (i CommentInput) Validate() error {
	if err := i.Entity.Validate(); err != nil {
		return err
	}
	if i.Content == "" {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "content", Message: "required"},
		}}
	}
	return nil
}

// Comment posts a comment on an entity. The entity must exist; its owner is
// notified unless they are the commenter.
func (s *Service) Comment(ctx context.Context, actorID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	input.Content = domain.Sanitize(input.Content)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID, label, err := s.resolveEntity(ctx, input.Entity)
	if err != nil {
		return nil, fmt.Errorf("collab.Comment: %w", err)
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		ID:        uuid.New(),
		Entity:    input.Entity,
		AuthorID:  actorID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("collab.Comment: %w", err)
	}

	s.activity.Record(ctx, actorID, domain.ActionComment, input.Entity.Kind, input.Entity.ID, nil)

	// Commenting on your own entity does not warrant a note. Workflow
	// notifications elsewhere do not make this exception.
	if ownerID != actorID {
		s.notify.Notify(ctx, ownerID, domain.NotifNewComment,
			fmt.Sprintf("New comment on %s %q", input.Entity.Kind.String(), label),
			input.Entity.Kind, input.Entity.ID)
	}

	return created, nil
}

// Comments lists all comments on an entity, newest first. The entity must
// exist.
func (s *Service) Comments(ctx context.Context, ref domain.EntityRef) ([]domain.Comment, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := s.resolveEntity(ctx, ref); err != nil {
		return nil, fmt.Errorf("collab.Comments: %w", err)
	}

	items, err := s.comments.ListByEntity(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("collab.Comments: %w", err)
	}
	return items, nil
}
