package v1

import (
    "github.com/google/uuid"

    "github.com/tinoosan/fungible/internal/service/balance"
)

type bookResponse struct {
    Code     string `json:"code"`
    Bits     int    `json:"bits"`
    Currency string `json:"currency"`
}

type listBooksResponse struct {
    Items []bookResponse `json:"items"`
}

type balanceResponse struct {
    Book        string `json:"book"`
    Owner       uint64 `json:"owner"`
    AmountMinor uint64 `json:"amount_minor"`
    // Amount is the decimal rendering in the book currency; omitted when it does not fit.
    Amount      string `json:"amount,omitempty"`
}

type listBalancesResponse struct {
    Items []balanceResponse `json:"items"`
}

type putBalanceRequest struct {
    AmountMinor *uint64 `json:"amount_minor"`
}

// Pointers distinguish a missing field from an explicit zero.
type postTransferRequest struct {
    From        *uint64 `json:"from"`
    To          *uint64 `json:"to"`
    AmountMinor *uint64 `json:"amount_minor"`
}

type transferResponse struct {
    ID          uuid.UUID       `json:"id"`
    Book        string          `json:"book"`
    AmountMinor uint64          `json:"amount_minor"`
    From        balanceResponse `json:"from"`
    To          balanceResponse `json:"to"`
}

func toBookResponse(i balance.Info) bookResponse {
    return bookResponse{Code: i.Code, Bits: i.Bits, Currency: i.Currency}
}

func toBalanceResponse(b balance.Balance) balanceResponse {
    return balanceResponse{Book: b.Book, Owner: b.Owner, AmountMinor: b.Minor, Amount: b.Display}
}

func toTransferResponse(rc balance.Receipt) transferResponse {
    return transferResponse{
        ID:          rc.ID,
        Book:        rc.Book,
        AmountMinor: rc.Amount,
        From:        toBalanceResponse(rc.From),
        To:          toBalanceResponse(rc.To),
    }
}
