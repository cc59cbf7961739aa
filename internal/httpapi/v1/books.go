package v1

import (
    "encoding/json"
    "net/http"
    "strconv"

    chi "github.com/go-chi/chi/v5"
)

// GET /v1/books
func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
    books := s.svc.Books(r.Context())
    out := listBooksResponse{Items: make([]bookResponse, 0, len(books))}
    for _, b := range books { out.Items = append(out.Items, toBookResponse(b)) }
    toJSON(w, http.StatusOK, out)
}

// GET /v1/books/{book}/accounts
func (s *Server) listHolders(w http.ResponseWriter, r *http.Request) {
    holders, err := s.svc.Holders(r.Context(), chi.URLParam(r, "book"))
    if err != nil { writeServiceErr(w, err); return }
    out := listBalancesResponse{Items: make([]balanceResponse, 0, len(holders))}
    for _, h := range holders { out.Items = append(out.Items, toBalanceResponse(h)) }
    toJSON(w, http.StatusOK, out)
}

// GET /v1/books/{book}/accounts/{owner}/balance
func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
    owner, ok := ownerParam(w, r)
    if !ok { return }
    bal, err := s.svc.BalanceOf(r.Context(), chi.URLParam(r, "book"), owner)
    if err != nil { writeServiceErr(w, err); return }
    toJSON(w, http.StatusOK, toBalanceResponse(bal))
}

// PUT /v1/books/{book}/accounts/{owner}/balance
// Overwrites the balance unconditionally.
func (s *Server) putBalance(w http.ResponseWriter, r *http.Request) {
    if !requireJSON(w, r) { return }
    owner, ok := ownerParam(w, r)
    if !ok { return }
    var req putBalanceRequest
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(&req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    if req.AmountMinor == nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "amount_minor is required"})
        return
    }
    bal, err := s.svc.SetBalance(r.Context(), chi.URLParam(r, "book"), owner, *req.AmountMinor)
    if err != nil { writeServiceErr(w, err); return }
    toJSON(w, http.StatusOK, toBalanceResponse(bal))
}

func ownerParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
    owner, err := strconv.ParseUint(chi.URLParam(r, "owner"), 10, 64)
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid owner"})
        return 0, false
    }
    return owner, true
}
