// Package requesttime pins a single "now" per HTTP request so every age and
// date computation inside the request agrees on today's date.
package requesttime

import (
	"net/http"
	"time"

	"inbank/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request
// and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWithClock(time.Now)(next)
}

// MiddlewareWithClock is Middleware with an injectable clock.
func MiddlewareWithClock(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Respect a time already pinned upstream (tests, outer routers).
			if _, ok := r.Context().Value(requestcontext.ContextKeyRequestTime).(time.Time); ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := requestcontext.WithTime(r.Context(), now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
