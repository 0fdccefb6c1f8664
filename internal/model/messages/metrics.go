package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "billsbot",
		Subsystem: "telegram",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"status"},
)

var counterCommands = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "billsbot",
		Subsystem: "telegram",
		Name:      "commands_total",
	},
	[]string{"command"},
)

var counterSummaries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "billsbot",
		Subsystem: "summary",
		Name:      "reports_total",
	},
	[]string{"kind", "cached"},
)

func observeResponse(elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

func observeCommand(cmd string) {
	if cmd == "" {
		cmd = "text"
	}
	counterCommands.WithLabelValues(cmd).Inc()
}

func observeSummary(kind string, cached bool) {
	counterSummaries.WithLabelValues(kind, strconv.FormatBool(cached)).Inc()
}
