package orbit

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/studentorbit/toastkit/handler"
	"github.com/studentorbit/toastkit/pkg/cookie"
)

var sessionKey = handler.NewKey[string]("orbit_session")

// SessionID returns the page session attached by the session middleware.
func SessionID(ctx context.Context) string {
	return sessionKey.Get(ctx)
}

// WithSessionID attaches a page session to ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return sessionKey.With(ctx, id)
}

// sessionMiddleware resolves the signed session cookie, issuing a new
// session when it is missing or does not verify.
func sessionMiddleware(cookies *cookie.Manager, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.GetSigned(r, name)
			if err != nil || uuid.Validate(id) != nil {
				id = uuid.NewString()
				cookies.SetSigned(w, name, id)
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}
