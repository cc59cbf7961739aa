package v1

import "net/http"

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

// readyz reports 503 until at least one book is mounted.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
    if len(s.svc.Books(r.Context())) == 0 { w.WriteHeader(http.StatusServiceUnavailable); return }
    w.WriteHeader(http.StatusOK)
}
