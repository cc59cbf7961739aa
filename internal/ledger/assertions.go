package ledger

import "github.com/google/uuid"

// Compile-time interface assertions for the instantiations the service and demo use.
var (
    _ Balances[uint64, uint64]    = (*Ledger[uint64, uint64])(nil)
    _ Balances[uint32, uint32]    = (*Ledger[uint32, uint32])(nil)
    _ Balances[uuid.UUID, uint64] = (*Ledger[uuid.UUID, uint64])(nil)
    _ Balances[uint64, uint64]    = locked[uint64, uint64]{}
)
