package ledger

import (
    "errors"
    "math"
    "sync"
    "testing"

    "github.com/google/uuid"
    "github.com/tinoosan/fungible/internal/errs"
)

// plainBalances is a bare map satisfying Balances, to exercise Transfer without Ledger.
type plainBalances map[string]uint16

func (p plainBalances) BalanceOf(owner string) uint16          { return p[owner] }
func (p plainBalances) SetBalance(owner string, amount uint16) { p[owner] = amount }

func TestBalanceOf_ZeroDefault(t *testing.T) {
    l := New[uint64, uint64]()
    if got := l.BalanceOf(42); got != 0 {
        t.Fatalf("expected 0 for unknown owner, got %d", got)
    }
    if l.Len() != 0 {
        t.Fatalf("reading must not materialise accounts, len=%d", l.Len())
    }
}

func TestSetBalance_Overwrites(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 100)
    if got := l.BalanceOf(1); got != 100 {
        t.Fatalf("expected 100, got %d", got)
    }
    l.SetBalance(1, 7)
    if got := l.BalanceOf(1); got != 7 {
        t.Fatalf("expected overwrite to 7, got %d", got)
    }
    l.SetBalance(1, 0)
    if got := l.BalanceOf(1); got != 0 {
        t.Fatalf("expected overwrite to 0, got %d", got)
    }
}

func TestTransfer_Successful(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 100)
    if err := l.Transfer(1, 2, 50); err != nil {
        t.Fatalf("transfer: %v", err)
    }
    if got := l.BalanceOf(1); got != 50 {
        t.Fatalf("sender expected 50, got %d", got)
    }
    if got := l.BalanceOf(2); got != 50 {
        t.Fatalf("recipient expected 50, got %d", got)
    }
}

func TestTransfer_InsufficientBalance(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 10)
    err := l.Transfer(1, 2, 50)
    if !errors.Is(err, errs.ErrInsufficientBalance) {
        t.Fatalf("expected insufficient balance, got %v", err)
    }
    if got := l.BalanceOf(1); got != 10 {
        t.Fatalf("sender expected 10, got %d", got)
    }
    if got := l.BalanceOf(2); got != 0 {
        t.Fatalf("recipient expected 0, got %d", got)
    }
    if l.Len() != 1 {
        t.Fatalf("failed transfer must not create the recipient, len=%d", l.Len())
    }
}

func TestTransfer_Conservation(t *testing.T) {
    l := New[uint32, uint32]()
    l.SetBalance(1, 900)
    l.SetBalance(2, 35)
    l.SetBalance(3, 12)
    amounts := []uint32{0, 1, 99, 400, 400}
    for _, amt := range amounts {
        from, to := l.BalanceOf(1), l.BalanceOf(2)
        if err := l.Transfer(1, 2, amt); err != nil {
            t.Fatalf("transfer %d: %v", amt, err)
        }
        if l.BalanceOf(1) != from-amt || l.BalanceOf(2) != to+amt {
            t.Fatalf("transfer %d: got %d/%d from %d/%d", amt, l.BalanceOf(1), l.BalanceOf(2), from, to)
        }
        if l.BalanceOf(1)+l.BalanceOf(2) != from+to {
            t.Fatalf("sum changed after transfer %d", amt)
        }
        if l.BalanceOf(3) != 12 {
            t.Fatalf("bystander changed: %d", l.BalanceOf(3))
        }
    }
}

func TestTransfer_ExactBalanceDrainsSender(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 64)
    if err := l.Transfer(1, 2, 64); err != nil {
        t.Fatalf("transfer: %v", err)
    }
    if l.BalanceOf(1) != 0 || l.BalanceOf(2) != 64 {
        t.Fatalf("unexpected balances %d/%d", l.BalanceOf(1), l.BalanceOf(2))
    }
}

func TestTransfer_SelfIsNeutral(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 100)
    if err := l.Transfer(1, 1, 100); err != nil {
        t.Fatalf("self transfer: %v", err)
    }
    if got := l.BalanceOf(1); got != 100 {
        t.Fatalf("expected 100 after self transfer, got %d", got)
    }
    if err := l.Transfer(1, 1, 101); !errors.Is(err, errs.ErrInsufficientBalance) {
        t.Fatalf("expected insufficient balance on oversized self transfer, got %v", err)
    }
    if got := l.BalanceOf(1); got != 100 {
        t.Fatalf("expected 100 after failed self transfer, got %d", got)
    }
}

func TestTransfer_SelfAtMaxDoesNotOverflow(t *testing.T) {
    l := New[uint32, uint32]()
    l.SetBalance(9, math.MaxUint32)
    if err := l.Transfer(9, 9, math.MaxUint32); err != nil {
        t.Fatalf("self transfer at max: %v", err)
    }
    if got := l.BalanceOf(9); got != math.MaxUint32 {
        t.Fatalf("expected max after self transfer, got %d", got)
    }
}

func TestTransfer_OverflowIsAtomic(t *testing.T) {
    l := New[uint32, uint32]()
    l.SetBalance(1, 10)
    l.SetBalance(2, math.MaxUint32-5)
    err := l.Transfer(1, 2, 6)
    if !errors.Is(err, errs.ErrBalanceOverflow) {
        t.Fatalf("expected overflow, got %v", err)
    }
    if l.BalanceOf(1) != 10 || l.BalanceOf(2) != math.MaxUint32-5 {
        t.Fatalf("balances changed on overflow: %d/%d", l.BalanceOf(1), l.BalanceOf(2))
    }
    // filling up to the limit exactly is fine
    if err := l.Transfer(1, 2, 5); err != nil {
        t.Fatalf("transfer to max: %v", err)
    }
    if l.BalanceOf(2) != math.MaxUint32 {
        t.Fatalf("expected max, got %d", l.BalanceOf(2))
    }
}

func TestTransfer_GenericOverUUIDKeys(t *testing.T) {
    l := New[uuid.UUID, uint64]()
    staker, provider := uuid.New(), uuid.New()
    l.SetBalance(staker, 100)
    if err := l.Transfer(staker, provider, 50); err != nil {
        t.Fatalf("transfer: %v", err)
    }
    if l.BalanceOf(staker) != 50 || l.BalanceOf(provider) != 50 {
        t.Fatalf("unexpected balances %d/%d", l.BalanceOf(staker), l.BalanceOf(provider))
    }
    if err := l.Transfer(provider, staker, 51); !errors.Is(err, errs.ErrInsufficientBalance) {
        t.Fatalf("expected insufficient balance, got %v", err)
    }
}

func TestTransfer_PlainBalances(t *testing.T) {
    b := plainBalances{"alice": 30}
    if err := Transfer[string, uint16](b, "alice", "bob", 20); err != nil {
        t.Fatalf("transfer: %v", err)
    }
    if b["alice"] != 10 || b["bob"] != 20 {
        t.Fatalf("unexpected balances %+v", b)
    }
    if err := Transfer[string, uint16](b, "alice", "bob", 11); !errors.Is(err, errs.ErrInsufficientBalance) {
        t.Fatalf("expected insufficient balance, got %v", err)
    }
    b["carol"] = math.MaxUint16
    if err := Transfer[string, uint16](b, "bob", "carol", 1); !errors.Is(err, errs.ErrBalanceOverflow) {
        t.Fatalf("expected overflow, got %v", err)
    }
    if b["bob"] != 20 || b["carol"] != math.MaxUint16 {
        t.Fatalf("balances changed on overflow: %+v", b)
    }
}

func TestSnapshot_IsACopy(t *testing.T) {
    l := New[uint64, uint64]()
    l.SetBalance(1, 5)
    snap := l.Snapshot()
    snap[1] = 99
    snap[2] = 1
    if l.BalanceOf(1) != 5 || l.Len() != 1 {
        t.Fatalf("snapshot mutation leaked into ledger")
    }
}

func TestTransfer_ConcurrentNeverOverdraws(t *testing.T) {
    l := New[uint64, uint64]()
    const start = 1000
    l.SetBalance(1, start)
    l.SetBalance(2, start)

    var wg sync.WaitGroup
    var mu sync.Mutex
    succeeded := 0
    for i := 0; i < 64; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            from, to := uint64(1), uint64(2+i%3)
            for j := 0; j < 50; j++ {
                if err := l.Transfer(from, to, 7); err == nil {
                    mu.Lock()
                    succeeded++
                    mu.Unlock()
                }
            }
        }(i)
    }
    wg.Wait()

    if want := uint64(start - succeeded*7); l.BalanceOf(1) != want {
        t.Fatalf("sender expected %d, got %d", want, l.BalanceOf(1))
    }
    if l.BalanceOf(1) >= 7 {
        t.Fatalf("sender should have been drained below one transfer, got %d", l.BalanceOf(1))
    }
    var total uint64
    for _, v := range l.Snapshot() {
        total += v
    }
    if total != 2*start {
        t.Fatalf("total not conserved: %d", total)
    }
}
