package balance

import (
    "math/bits"

    "github.com/tinoosan/fungible/internal/errs"
    "github.com/tinoosan/fungible/internal/ledger"
)

// Info describes a mounted book.
type Info struct {
    Code     string
    // Bits is the width of the book's balance type.
    Bits     int
    // Currency renders minor units for display; it does not make the book multi-asset.
    Currency string
}

// Book is a width-independent view over one ledger.Ledger. Owners and amounts
// cross it as uint64 and are narrowed to the ledger's own types.
type Book interface {
    Info() Info
    BalanceOf(owner uint64) (uint64, error)
    SetBalance(owner, amount uint64) error
    Transfer(from, to, amount uint64) error
    Holders() map[uint64]uint64
}

type book[A, B ledger.Amount] struct {
    info Info
    l    *ledger.Ledger[A, B]
}

func newBook[A, B ledger.Amount](code, currency string, l *ledger.Ledger[A, B]) *book[A, B] {
    return &book[A, B]{info: Info{Code: code, Bits: bits.Len64(uint64(^B(0))), Currency: currency}, l: l}
}

func (b *book[A, B]) Info() Info { return b.info }

func (b *book[A, B]) BalanceOf(owner uint64) (uint64, error) {
    o, err := narrow[A](owner)
    if err != nil { return 0, err }
    return uint64(b.l.BalanceOf(o)), nil
}

func (b *book[A, B]) SetBalance(owner, amount uint64) error {
    o, err := narrow[A](owner)
    if err != nil { return err }
    a, err := narrow[B](amount)
    if err != nil { return err }
    b.l.SetBalance(o, a)
    return nil
}

// Transfer narrows every argument before touching the ledger so a value that
// does not fit can never cause a partial transfer.
func (b *book[A, B]) Transfer(from, to, amount uint64) error {
    f, err := narrow[A](from)
    if err != nil { return err }
    t, err := narrow[A](to)
    if err != nil { return err }
    a, err := narrow[B](amount)
    if err != nil { return err }
    return b.l.Transfer(f, t, a)
}

func (b *book[A, B]) Holders() map[uint64]uint64 {
    snap := b.l.Snapshot()
    out := make(map[uint64]uint64, len(snap))
    for k, v := range snap { out[uint64(k)] = uint64(v) }
    return out
}

// narrow converts v to T, rejecting values that would be truncated.
func narrow[T ledger.Amount](v uint64) (T, error) {
    t := T(v)
    if uint64(t) != v { return 0, errs.ErrOutOfRange }
    return t, nil
}
