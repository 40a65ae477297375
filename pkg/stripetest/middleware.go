package stripetest

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

// recovery turns a panicking handler into a 500 api_error, the way Stripe
// reports its own internal failures.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error(
					"panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				StripeError(w, http.StatusInternalServerError, "api_error", "", fmt.Sprintf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authMiddleware validates Stripe-style Bearer token authentication.
func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
		if key == "" {
			StripeError(w, http.StatusUnauthorized,
				"invalid_request_error", "api_key_required",
				"You did not provide an API key.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
