package v1

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/tinoosan/fungible/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
    Error string `json:"error"`
    Code  string `json:"code,omitempty"`
}

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
    toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }
func notFound(w http.ResponseWriter)               { writeErr(w, http.StatusNotFound, "not_found", "not_found") }
func conflict(w http.ResponseWriter, msg string)   { writeErr(w, http.StatusConflict, msg, msg) }
func unprocessable(w http.ResponseWriter, msg, code string) {
    writeErr(w, http.StatusUnprocessableEntity, msg, code)
}

// writeServiceErr maps service sentinels onto status codes.
func writeServiceErr(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, errs.ErrNotFound):
        notFound(w)
    case errors.Is(err, errs.ErrInsufficientBalance):
        unprocessable(w, "insufficient balance", "insufficient_balance")
    case errors.Is(err, errs.ErrBalanceOverflow):
        unprocessable(w, "credit would overflow recipient balance", "balance_overflow")
    case errors.Is(err, errs.ErrOutOfRange):
        writeErr(w, http.StatusBadRequest, "value out of range for book", "out_of_range")
    case errors.Is(err, errs.ErrInvalid):
        badRequest(w, err.Error())
    default:
        writeErr(w, http.StatusInternalServerError, "internal error", "")
    }
}
