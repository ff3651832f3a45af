package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

const testSecret = "test-secret-key-needs-32-chars!!"

func newTestManager() *JWTManager {
	return NewJWTManager(testSecret, "prodboard-test", 24*time.Hour)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	userID := uuid.New()

	token, err := m.Generate(userID, "pm@example.com", domain.RoleProductManager)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID: got %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "pm@example.com" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Role != domain.RoleProductManager {
		t.Errorf("role: got %q", claims.Role)
	}
}

func TestJWTManager_EmptyToken(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	if _, err := m.Validate(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, err := m.Generate(uuid.New(), "a@b.co", domain.RoleViewer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other := NewJWTManager("another-secret-key-with-32-chars", "prodboard-test", time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "someone-else", time.Hour)
	token, err := m.Generate(uuid.New(), "a@b.co", domain.RoleViewer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := newTestManager().Validate(token); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "prodboard-test", -time.Minute)
	token, err := m.Generate(uuid.New(), "a@b.co", domain.RoleViewer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestJWTManager_UnrecognizedRole(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, err := m.Generate(uuid.New(), "a@b.co", domain.Role("wizard"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = m.Validate(token)
	if err == nil {
		t.Fatal("expected error for unrecognized role")
	}
	if !strings.Contains(err.Error(), "role") {
		t.Errorf("expected role error, got %v", err)
	}
}

func TestJWTManager_Tampered(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, err := m.Generate(uuid.New(), "a@b.co", domain.RoleViewer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := m.Validate(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}
