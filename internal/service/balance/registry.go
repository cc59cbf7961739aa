package balance

import (
    "fmt"
    "sort"
    "sync"

    "github.com/govalues/money"

    "github.com/tinoosan/fungible/internal/errs"
    "github.com/tinoosan/fungible/internal/ledger"
    "github.com/tinoosan/fungible/internal/slug"
)

// Registry maps book codes to mounted ledgers.
// It is guarded by an RWMutex; each ledger guards its own balances.
type Registry struct {
    mu    sync.RWMutex
    books map[string]Book
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
    return &Registry{books: make(map[string]Book)}
}

// Mount registers l under code. The code must be a slug and unique within r;
// currency must be a known ISO 4217 code.
func Mount[A, B ledger.Amount](r *Registry, code, currency string, l *ledger.Ledger[A, B]) error {
    code = slug.Normalize(code)
    if !slug.IsSlug(code) { return fmt.Errorf("book code %q: %w", code, errs.ErrInvalid) }
    if l == nil { return fmt.Errorf("book %s: nil ledger: %w", code, errs.ErrInvalid) }
    curr, err := money.ParseCurr(currency)
    if err != nil { return fmt.Errorf("book %s: currency %q: %w", code, currency, errs.ErrInvalid) }
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, ok := r.books[code]; ok { return fmt.Errorf("book %s: %w", code, errs.ErrConflict) }
    r.books[code] = newBook(code, curr.Code(), l)
    return nil
}

// Lookup returns the book mounted under code.
func (r *Registry) Lookup(code string) (Book, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    b, ok := r.books[slug.Normalize(code)]
    if !ok { return nil, errs.ErrNotFound }
    return b, nil
}

// Books lists mounted books ordered by code.
func (r *Registry) Books() []Info {
    r.mu.RLock()
    out := make([]Info, 0, len(r.books))
    for _, b := range r.books { out = append(out, b.Info()) }
    r.mu.RUnlock()
    sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
    return out
}
