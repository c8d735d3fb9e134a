package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

// RequirePermission rejects anonymous callers with 401 and callers whose
// role lacks p with 403.
func RequirePermission(p domain.Permission) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch err := Authorize(r.Context(), p); err {
			case nil:
				next.ServeHTTP(w, r)
			case domain.ErrUnauthorized:
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
			default:
				writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
			}
		})
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Authorize checks the context caller against p. Returns
// domain.ErrUnauthorized for anonymous callers and domain.ErrForbidden when
// the role lacks the permission.
func Authorize(ctx context.Context, p domain.Permission) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !domain.Role(ctxutil.UserRoleFromCtx(ctx)).Can(p) {
		return domain.ErrForbidden
	}
	return nil
}
