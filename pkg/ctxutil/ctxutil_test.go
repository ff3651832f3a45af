package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	want := Identity{UserID: uuid.New(), Email: "pm@example.com", Role: domain.RoleProductManager}
	ctx := WithIdentity(context.Background(), want)

	got, ok := IdentityFromCtx(ctx)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestIdentityFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromCtx(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}
}

func TestIdentityFromCtx_NilUserID(t *testing.T) {
	t.Parallel()

	ctx := WithIdentity(context.Background(), Identity{Role: domain.RoleViewer})
	if _, ok := IdentityFromCtx(ctx); ok {
		t.Error("identity with nil user ID must not resolve")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want %q", got, "req-123")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
