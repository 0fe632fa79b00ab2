package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns a middleware that bounds each request with a deadline.
// Handlers and their downstream calls observe the deadline through the
// request context; slow database or Redis calls abort instead of piling up.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
