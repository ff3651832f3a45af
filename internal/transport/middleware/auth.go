package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/prodboard-backend/internal/auth"
	"github.com/heartmarshall/prodboard-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Claims, error)
}

// Auth resolves the caller identity from the Authorization header and stores
// it in the request context. Requests without a token pass through anonymous;
// route-level guards decide whether that is acceptable. A present but invalid
// token is rejected outright.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			claims, err := validator.Validate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), ctxutil.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
