// Package balance exposes mounted ledgers by book code: reads, overwrites and
// transfers with range checks, logging and metrics around the core ledger.
package balance

import (
    "context"
    "errors"
    "log/slog"
    "math"
    "sort"

    "github.com/google/uuid"
    "github.com/govalues/money"

    "github.com/tinoosan/fungible/internal/errs"
)

// Balance is the balance of one owner in one book.
type Balance struct {
    Book    string
    Owner   uint64
    Minor   uint64
    // Display is the money rendering of Minor; empty when Minor exceeds int64.
    Display string
}

// Receipt describes a completed transfer.
type Receipt struct {
    ID     uuid.UUID
    Book   string
    Amount uint64
    From   Balance
    To     Balance
}

// Service exposes the ledger operations by book code.
type Service interface {
    Books(ctx context.Context) []Info
    BalanceOf(ctx context.Context, book string, owner uint64) (Balance, error)
    SetBalance(ctx context.Context, book string, owner, amount uint64) (Balance, error)
    Transfer(ctx context.Context, book string, from, to, amount uint64) (Receipt, error)
    Holders(ctx context.Context, book string) ([]Balance, error)
}

type service struct {
    reg *Registry
    log *slog.Logger
}

func New(reg *Registry, logger *slog.Logger) Service {
    if logger == nil { logger = slog.Default() }
    return &service{reg: reg, log: logger}
}

func (s *service) Books(_ context.Context) []Info { return s.reg.Books() }

func (s *service) BalanceOf(_ context.Context, code string, owner uint64) (Balance, error) {
    b, err := s.reg.Lookup(code)
    if err != nil { return Balance{}, err }
    v, err := b.BalanceOf(owner)
    if err != nil { return Balance{}, err }
    return toBalance(b.Info(), owner, v), nil
}

func (s *service) SetBalance(ctx context.Context, code string, owner, amount uint64) (Balance, error) {
    b, err := s.reg.Lookup(code)
    if err != nil { return Balance{}, err }
    if err := b.SetBalance(owner, amount); err != nil { return Balance{}, err }
    s.log.InfoContext(ctx, "balance set", "book", b.Info().Code, "owner", owner, "amount", amount)
    return toBalance(b.Info(), owner, amount), nil
}

func (s *service) Transfer(ctx context.Context, code string, from, to, amount uint64) (Receipt, error) {
    b, err := s.reg.Lookup(code)
    if err != nil { return Receipt{}, err }
    info := b.Info()
    id := uuid.New()
    if err := b.Transfer(from, to, amount); err != nil {
        transfersTotal.WithLabelValues(info.Code, resultLabel(err)).Inc()
        s.log.WarnContext(ctx, "transfer rejected", "book", info.Code, "transfer_id", id.String(), "from", from, "to", to, "amount", amount, "err", err)
        return Receipt{}, err
    }
    transfersTotal.WithLabelValues(info.Code, "ok").Inc()
    // from and to were narrowed successfully above, so reading them cannot fail.
    fromBal, _ := b.BalanceOf(from)
    toBal, _ := b.BalanceOf(to)
    s.log.InfoContext(ctx, "transfer applied", "book", info.Code, "transfer_id", id.String(), "from", from, "to", to, "amount", amount)
    return Receipt{
        ID:     id,
        Book:   info.Code,
        Amount: amount,
        From:   toBalance(info, from, fromBal),
        To:     toBalance(info, to, toBal),
    }, nil
}

func (s *service) Holders(_ context.Context, code string) ([]Balance, error) {
    b, err := s.reg.Lookup(code)
    if err != nil { return nil, err }
    info := b.Info()
    holders := b.Holders()
    out := make([]Balance, 0, len(holders))
    for owner, v := range holders { out = append(out, toBalance(info, owner, v)) }
    sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
    return out, nil
}

func toBalance(info Info, owner, minor uint64) Balance {
    return Balance{Book: info.Code, Owner: owner, Minor: minor, Display: display(info.Currency, minor)}
}

// display renders minor units in the book currency.
func display(currency string, minor uint64) string {
    if minor > math.MaxInt64 { return "" }
    amt, err := money.NewAmountFromMinorUnits(currency, int64(minor))
    if err != nil { return "" }
    return amt.String()
}

func resultLabel(err error) string {
    switch {
    case errors.Is(err, errs.ErrInsufficientBalance):
        return "insufficient_balance"
    case errors.Is(err, errs.ErrBalanceOverflow):
        return "balance_overflow"
    case errors.Is(err, errs.ErrOutOfRange):
        return "out_of_range"
    default:
        return "error"
    }
}
