package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
    ErrNotFound = errors.New("not_found")
    ErrConflict = errors.New("conflict")
    ErrInvalid  = errors.New("invalid")
    // ErrInsufficientBalance is returned by a transfer whose sender holds less than the amount.
    ErrInsufficientBalance = errors.New("insufficient_balance")
    // ErrBalanceOverflow is returned by a transfer whose credit would exceed the balance type.
    ErrBalanceOverflow = errors.New("balance_overflow")
    // ErrOutOfRange indicates an owner or amount that does not fit a book's types.
    ErrOutOfRange = errors.New("out_of_range")
)
