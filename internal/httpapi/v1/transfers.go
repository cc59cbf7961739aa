package v1

import (
    "encoding/json"
    "net/http"

    chi "github.com/go-chi/chi/v5"
)

// postTransfer handles POST /v1/books/{book}/transfers.
// Returns 201 with the receipt, or 422 with insufficient_balance / balance_overflow
// when nothing was moved. With an Idempotency-Key header the first outcome is
// stored and replayed for the same body; a different body under the same key is 409.
func (s *Server) postTransfer(w http.ResponseWriter, r *http.Request) {
    if !requireJSON(w, r) { return }
    var req postTransferRequest
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(&req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    if req.From == nil || req.To == nil || req.AmountMinor == nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "from, to and amount_minor are required"})
        return
    }
    book := chi.URLParam(r, "book")

    key := r.Header.Get("Idempotency-Key")
    if key == "" {
        s.transfer(w, r, book, req)
        return
    }
    // normalize body for stable hash
    nb, _ := json.Marshal(struct {
        Book   string `json:"book"`
        From   uint64 `json:"from"`
        To     uint64 `json:"to"`
        Amount uint64 `json:"amount_minor"`
    }{book, *req.From, *req.To, *req.AmountMinor})
    h := hashBytes(nb)

    s.idemMu.Lock()
    defer s.idemMu.Unlock()
    if prev, ok := s.idem[key]; ok {
        if prev.BodyHash != h { conflict(w, "idempotency_mismatch"); return }
        w.Header().Set("Content-Type", "application/json")
        w.Header().Set("Idempotent-Replayed", "true")
        w.WriteHeader(prev.Status)
        _, _ = w.Write(prev.Payload)
        return
    }
    rw := &captureWriter{ResponseWriter: w}
    s.transfer(rw, r, book, req)
    s.idem[key] = storedResponse{BodyHash: h, Status: rw.status, Payload: append([]byte(nil), rw.buf...)}
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request, book string, req postTransferRequest) {
    rc, err := s.svc.Transfer(r.Context(), book, *req.From, *req.To, *req.AmountMinor)
    if err != nil { writeServiceErr(w, err); return }
    toJSON(w, http.StatusCreated, toTransferResponse(rc))
}
