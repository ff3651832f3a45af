package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"fk violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.in, "roadmap", id)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	got := MapError(context.Canceled, "idea", uuid.Nil)
	if !errors.Is(got, context.Canceled) {
		t.Errorf("expected context.Canceled to pass through, got %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("context errors must not map to domain errors")
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("connection reset")
	got := MapError(sentinel, "requirement", uuid.Nil)
	if !errors.Is(got, sentinel) {
		t.Errorf("expected original error preserved, got %v", got)
	}
}
