// Package metrics exposes the Prometheus counters for the challenge
// tracker.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slimdown",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, path and status code.",
		},
		[]string{"method", "path", "code"},
	)

	contestantsEnrolled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slimdown",
			Name:      "contestants_enrolled_total",
			Help:      "Count of contestants enrolled in the challenge.",
		},
	)

	contestantsRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slimdown",
			Name:      "contestants_removed_total",
			Help:      "Count of contestants removed from the challenge.",
		},
	)

	weighIns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slimdown",
			Name:      "weigh_ins_total",
			Help:      "Count of recorded weigh-ins.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, contestantsEnrolled, contestantsRemoved, weighIns)
	})
}

func IncHTTPRequest(method, path, code string) {
	httpRequests.WithLabelValues(method, path, code).Inc()
}

func IncContestantEnrolled() {
	contestantsEnrolled.Inc()
}

func IncContestantRemoved() {
	contestantsRemoved.Inc()
}

func IncWeighIn() {
	weighIns.Inc()
}
