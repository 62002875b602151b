// Package httptransport assembles the HTTP surface: middleware, health and
// metrics endpoints, and the versioned API mount. Handlers stay thin and
// delegate to the convert service.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chrono/internal/convert"
	converthandler "chrono/internal/convert/handler"
	"chrono/pkg/platform/middleware/requestid"
	"chrono/pkg/platform/middleware/requesttime"
)

// NewRouter wires all public endpoints.
func NewRouter(svc *convert.Service, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		converthandler.New(svc, logger).Register(v1)
	})

	return r
}
