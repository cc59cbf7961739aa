package v1

import (
    "mime"
    "net/http"
)

// requireJSON writes 415 and returns false unless Content-Type is application/json
// (parameters such as charset are allowed).
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
    mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
    if err != nil || mt != "application/json" {
        writeErr(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported_media_type")
        return false
    }
    return true
}
