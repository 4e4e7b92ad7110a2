package http

import (
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// RequireAdmin rejects authenticated callers who are not administrators. It
// must run after httpx.AuthnMiddleware, which puts the user id and role claim
// on the context.
func RequireAdmin(authz *service.AuthzService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := httpx.UserIDFromCtx(ctx)
			if userID == "" {
				clubsdk.ErrUnauthorized.WriteError(w)
				return
			}

			ok, err := authz.IsAdmin(ctx, userID, httpx.RoleFromCtx(ctx))
			if err != nil {
				slogx.FromContext(ctx).Error("authorization check failed", "err", err)
				clubsdk.ErrServerError.WriteError(w)
				return
			}
			if !ok {
				clubsdk.ErrForbidden.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
