package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dnsintake"

var objectives = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}

var (
	grpcRequests = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "grpc",
			Name:       "request",
			Objectives: objectives,
		},
		[]string{"status", "method"},
	)

	httpRequests = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "http",
			Name:       "request",
			Objectives: objectives,
		},
		[]string{"status", "route"},
	)

	inserts = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "storage",
			Name:       "insert",
			Objectives: objectives,
		},
		[]string{"source", "outcome"},
	)

	publishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
		},
		[]string{"kind"},
	)
)

// ObserveRequest records a gRPC call; status is the numeric grpc code.
func ObserveRequest(methodName string, status int, duration time.Duration) {
	grpcRequests.WithLabelValues(strconv.Itoa(status), methodName).Observe(duration.Seconds())
}

func ObserveHTTPRequest(route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(strconv.Itoa(status), route).Observe(duration.Seconds())
}

func ObserveInsert(source string, outcome string, duration time.Duration) {
	inserts.WithLabelValues(source, outcome).Observe(duration.Seconds())
}

func IncPublishFailure(kind string) {
	publishFailures.WithLabelValues(kind).Inc()
}
