package transporthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/http/handlers"
)

// Deps bundles feature handlers that implement handlers.Mountable.
type Deps struct {
	Mounts []handlers.Mountable
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	for _, m := range d.Mounts {
		m.Mount(r)
	}

	return r
}
