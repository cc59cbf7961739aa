package balance

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var transfersTotal = promauto.NewCounterVec(
    prometheus.CounterOpts{
        Namespace: "fungible",
        Name:      "transfers_total",
        Help:      "Transfers attempted per book, by result",
    },
    []string{"book", "result"},
)
