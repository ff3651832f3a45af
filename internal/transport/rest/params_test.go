package rest

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	cfg := config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}

	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "?page=3&limit=10", 3, 10, 20},
		{"limit capped", "?limit=500", 1, 100, 0},
		{"garbage falls back", "?page=abc&limit=-5", 1, 20, 0},
		{"zero page falls back", "?page=0", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/api/roadmaps"+tt.query, nil)
			got := parsePage(r, cfg)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
				t.Errorf("parsePage(%q) = %+v, want page=%d limit=%d offset=%d",
					tt.query, got, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("empty is nil", func(t *testing.T) {
		t.Parallel()
		got, err := parseDate("")
		if err != nil || got != nil {
			t.Errorf("parseDate(\"\") = %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		t.Parallel()
		got, err := parseDate("2026-08-29T10:30:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("plain date", func(t *testing.T) {
		t.Parallel()
		got, err := parseDate("2026-08-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year() != 2026 || got.Month() != time.August || got.Day() != 29 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		if _, err := parseDate("next tuesday"); err == nil {
			t.Error("expected error for unparseable date")
		}
	})
}

func TestQueryUUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/requirements?roadmap_id="+id.String(), nil)
		got, err := queryUUID(r, "roadmap_id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || *got != id {
			t.Errorf("got %v, want %s", got, id)
		}
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/requirements", nil)
		got, err := queryUUID(r, "roadmap_id")
		if err != nil || got != nil {
			t.Errorf("got %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/requirements?roadmap_id=nope", nil)
		if _, err := queryUUID(r, "roadmap_id"); err == nil {
			t.Error("expected error for malformed uuid")
		}
	})
}
