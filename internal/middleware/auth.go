package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

// APIKey requires the X-API-Key header to match the configured key on every
// request it wraps. Health and metrics routes are mounted outside it.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				problem.WriteFor(w, r, http.StatusUnauthorized,
					"Unauthorized", "Missing or invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
