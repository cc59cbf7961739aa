package v1

import (
    "net/http"
    "strconv"
    "time"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    httpRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "fungible",
            Name:      "http_requests_total",
            Help:      "Total number of HTTP requests",
        },
        []string{"method", "route", "status"},
    )
    httpRequestDuration = promauto.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "fungible",
            Name:      "http_request_duration_seconds",
            Help:      "Duration of HTTP requests in seconds",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"method", "route"},
    )
)

func metricsHandler() http.Handler {
    return promhttp.Handler()
}

// metricsMiddleware labels by route pattern rather than raw path to keep cardinality bounded.
func metricsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
        start := time.Now()
        next.ServeHTTP(ww, r)
        route := "unmatched"
        if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
            route = rc.RoutePattern()
        }
        httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
        httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
    })
}
