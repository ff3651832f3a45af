package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodboard-backend/internal/config"
)

// pageParams is a parsed page/limit pair plus the derived offset.
type pageParams struct {
	Page   int
	Limit  int
	Offset int
}

// parsePage reads page and limit query parameters, applying the configured
// default and cap. Non-numeric or non-positive values fall back to defaults.
func parsePage(r *http.Request, cfg config.PaginationConfig) pageParams {
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	limit := cfg.DefaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	return pageParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// queryStr returns a pointer to the named query parameter, nil when absent.
func queryStr(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

// queryEnum returns the named query parameter converted to an enum type,
// nil when absent. Validity is checked by the service input.
func queryEnum[T ~string](r *http.Request, name string) *T {
	if v := r.URL.Query().Get(name); v != "" {
		t := T(v)
		return &t
	}
	return nil
}

// queryUUID returns the named query parameter parsed as a UUID.
// A present but malformed value reports an error.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseDate parses an optional RFC 3339 timestamp or plain date.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
