package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds the request context without http.TimeoutHandler, so
// handlers that hijack the connection (websocket upgrades) keep working.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() here is ongoingCtx from BaseContext
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
