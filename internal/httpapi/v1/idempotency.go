package v1

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

type storedResponse struct {
	BodyHash string
	Status   int
	Payload  []byte
}

func hashBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// captureWriter records what a handler wrote so it can be replayed.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    []byte
}

func (w *captureWriter) WriteHeader(code int) { w.status = code; w.ResponseWriter.WriteHeader(code) }
func (w *captureWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.buf = append(w.buf, b...)
	return w.ResponseWriter.Write(b)
}
