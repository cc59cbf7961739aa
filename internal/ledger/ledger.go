// Package ledger keeps balances keyed by account and moves value between them.
//
// A Ledger is generic over the account identifier A and the balance type B.
// Balances are unsigned, so no account can ever hold a negative amount, and
// an account that was never touched holds the zero value of B.
package ledger

import (
    "sync"

    "github.com/tinoosan/fungible/internal/errs"
)

// Amount enumerates the balance types a ledger can hold.
type Amount interface {
    ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Balances is the pair of primitives a transfer is written against.
type Balances[A comparable, B Amount] interface {
    // BalanceOf returns the balance of owner, or zero if it was never set.
    BalanceOf(owner A) B
    // SetBalance overwrites the balance of owner.
    SetBalance(owner A, amount B)
}

// Transfer moves amount from one account to another using only the primitives of b.
// Either both legs are applied or neither is: an insufficient sender balance or
// a credit that would overflow B leaves b untouched.
// Transfer does no locking; b must not be mutated concurrently while it runs.
func Transfer[A comparable, B Amount](b Balances[A, B], from, to A, amount B) error {
    fromBal := b.BalanceOf(from)
    if fromBal < amount {
        return errs.ErrInsufficientBalance
    }
    // A self-transfer credits back what it just debited and cannot overflow.
    if from != to {
        if toBal := b.BalanceOf(to); toBal+amount < toBal {
            return errs.ErrBalanceOverflow
        }
    }
    b.SetBalance(from, fromBal-amount)
    // read after the debit so from == to nets to zero
    toBal := b.BalanceOf(to)
    b.SetBalance(to, toBal+amount)
    return nil
}

// Ledger is an in-memory Balances guarded by an RWMutex for concurrent use.
type Ledger[A comparable, B Amount] struct {
    mu       sync.RWMutex
    balances map[A]B
}

// New constructs an empty ledger.
func New[A comparable, B Amount]() *Ledger[A, B] {
    return &Ledger[A, B]{balances: make(map[A]B)}
}

// BalanceOf implements Balances.
func (l *Ledger[A, B]) BalanceOf(owner A) B {
    l.mu.RLock()
    defer l.mu.RUnlock()
    return l.balances[owner]
}

// SetBalance implements Balances.
func (l *Ledger[A, B]) SetBalance(owner A, amount B) {
    l.mu.Lock()
    l.balances[owner] = amount
    l.mu.Unlock()
}

// Transfer runs the package-level Transfer while holding the write lock, so the
// sufficiency check and both updates are one critical section.
func (l *Ledger[A, B]) Transfer(from, to A, amount B) error {
    l.mu.Lock()
    defer l.mu.Unlock()
    return Transfer[A, B](locked[A, B]{l}, from, to, amount)
}

// Len returns the number of accounts that have been set or credited.
func (l *Ledger[A, B]) Len() int {
    l.mu.RLock()
    defer l.mu.RUnlock()
    return len(l.balances)
}

// Snapshot returns a copy of all materialised balances.
func (l *Ledger[A, B]) Snapshot() map[A]B {
    l.mu.RLock()
    defer l.mu.RUnlock()
    out := make(map[A]B, len(l.balances))
    for k, v := range l.balances {
        out[k] = v
    }
    return out
}

// locked exposes the map of a Ledger whose mutex the caller already holds.
type locked[A comparable, B Amount] struct{ l *Ledger[A, B] }

func (v locked[A, B]) BalanceOf(owner A) B          { return v.l.balances[owner] }
func (v locked[A, B]) SetBalance(owner A, amount B) { v.l.balances[owner] = amount }
