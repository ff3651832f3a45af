package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Auth: AuthConfig{
			JWTSecret:        "0123456789abcdef0123456789abcdef",
			TokenTTL:         24 * time.Hour,
			PasswordHashCost: 10,
		},
		Pagination:    PaginationConfig{DefaultLimit: 20, MaxLimit: 100},
		Notifications: NotificationsConfig{ListCap: 50, RetentionDays: 90},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for short jwt_secret")
	}
}

func TestValidate_TokenTTL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.TokenTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero token_ttl")
	}
}

func TestValidate_HashCost(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.PasswordHashCost = 99
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range hash cost")
	}
}

func TestValidate_Pagination(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Pagination.MaxLimit = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when max_limit < default_limit")
	}

	cfg = validConfig()
	cfg.Pagination.DefaultLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero default_limit")
	}
}

func TestValidate_NotificationsCap(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Notifications.ListCap = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero list_cap")
	}
}
