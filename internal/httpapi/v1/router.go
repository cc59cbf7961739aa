// Package v1 wires the HTTP surface of the balance service.
// It keeps handlers thin, delegating the ledger rules to the service layer.
package v1

import (
    "log/slog"
    "net/http"
    "sync"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"

    "github.com/tinoosan/fungible/internal/service/balance"
)

// Server wires handlers and middleware using Chi.
type Server struct {
    svc balance.Service
    log *slog.Logger
    rt  *chi.Mux

    // Idempotency-Key -> stored transfer response. Keyed transfers run under idemMu.
    idemMu sync.Mutex
    idem   map[string]storedResponse
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging and panic recovery.
func New(svc balance.Service, logger *slog.Logger) *Server {
    r := chi.NewRouter()
    r.Use(chimw.RequestID)
    r.Use(requestLogger(logger))
    r.Use(recoverer(logger))
    r.Use(metricsMiddleware)

    s := &Server{
        svc:  svc,
        log:  logger,
        rt:   r,
        idem: make(map[string]storedResponse),
    }
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
    s.rt.Get("/v1/books", s.listBooks)
    s.rt.Get("/v1/books/{book}/accounts", s.listHolders)
    s.rt.Get("/v1/books/{book}/accounts/{owner}/balance", s.getBalance)
    s.rt.Put("/v1/books/{book}/accounts/{owner}/balance", s.putBalance)
    s.rt.Post("/v1/books/{book}/transfers", s.postTransfer)
    // Health (unversioned)
    s.rt.Get("/healthz", s.healthz)
    s.rt.Get("/readyz", s.readyz)
    s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
