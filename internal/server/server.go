// Package server exposes the docforge rendering pipelines over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/intelliforge/docforge"
	"github.com/intelliforge/docforge/internal/config"
)

const serviceName = "markdown-to-pdf"

// Converter is the rendering capability the handlers depend on. Both
// *docforge.Service and *docforge.ServicePool satisfy it; tests substitute
// a stub so no browser is launched.
type Converter interface {
	Convert(ctx context.Context, input docforge.ConversionInput) ([]byte, error)
	IssueCertificate(ctx context.Context, input docforge.CertificateInput) ([]byte, string, error)
}

// Handler wires HTTP endpoints using net/http.
type Handler struct {
	cfg     config.Config
	conv    Converter
	logger  *slog.Logger
	version string
	router  *http.ServeMux
}

// New creates a Handler using the supplied dependencies.
func New(cfg config.Config, conv Converter, logger *slog.Logger, version string) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		cfg:     cfg,
		conv:    conv,
		logger:  logger,
		version: version,
		router:  http.NewServeMux(),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.HandleFunc("GET /{$}", h.handleRoot)
	h.router.HandleFunc("GET /api/health", h.handleHealth)
	h.router.HandleFunc("GET /api/info", h.handleInfo)
	h.router.HandleFunc("GET /api/courses", h.handleCourses)
	h.router.HandleFunc("POST /api/convert", h.handleConvert)
	h.router.HandleFunc("POST /api/certificate", h.handleCertificate)
	h.router.Handle("GET /metrics", promhttp.Handler())
}

// ServeHTTP applies the middleware chain around the router. CORS runs
// outermost so preflight requests short-circuit before route matching.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.corsMiddleware(h.loggingMiddleware(h.recoverMiddleware(h.router))).ServeHTTP(w, r)
}
