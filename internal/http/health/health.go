package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// New builds liveness and readiness endpoints. All state is in-process, so
// readiness holds whenever the process answers at all.
func New() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return r
}
