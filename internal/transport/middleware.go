package transport

import (
	"context"
	"net/http"

	"github.com/estatoai/estato/internal/domain/user"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the resolved caller, if any.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}

// identityMiddleware resolves the X-User-ID header to a user record via a
// point read. Anonymous requests pass through; role gates are enforced
// per route.
func (s *Server) identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-User-ID")
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		u, err := s.users.Get(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return u, true
}

func (s *Server) requireAgent(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u, ok := s.requireUser(w, r)
	if !ok {
		return nil, false
	}
	if !u.CanViewInventory() && !s.users.IsAdmin(u.Email) {
		writeError(w, http.StatusForbidden, "agent access required")
		return nil, false
	}
	return u, true
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u, ok := s.requireUser(w, r)
	if !ok {
		return nil, false
	}
	if !s.users.IsAdmin(u.Email) {
		writeError(w, http.StatusForbidden, "administrator access required")
		return nil, false
	}
	return u, true
}
