package v1

import (
    "log/slog"
    "net/http"
    "runtime/debug"
    "time"

    chimw "github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request: DEBUG on success, WARN on 4xx, ERROR on 5xx.
func requestLogger(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            next.ServeHTTP(ww, r)

            level := slog.LevelDebug
            switch {
            case ww.Status() >= 500:
                level = slog.LevelError
            case ww.Status() >= 400:
                level = slog.LevelWarn
            }
            l.LogAttrs(r.Context(), level, "request complete",
                slog.String("req_id", chimw.GetReqID(r.Context())),
                slog.String("method", r.Method),
                slog.String("path", r.URL.Path),
                slog.Int("status", ww.Status()),
                slog.Int("bytes", ww.BytesWritten()),
                slog.Duration("duration", time.Since(start)),
            )
        })
    }
}

// recoverer logs panics as ERROR and returns 500.
func recoverer(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            defer func() {
                if rec := recover(); rec != nil {
                    l.Error("panic", "req_id", chimw.GetReqID(r.Context()), "err", rec, "stack", string(debug.Stack()))
                    writeErr(w, http.StatusInternalServerError, "internal error", "")
                }
            }()
            next.ServeHTTP(w, r)
        })
    }
}
