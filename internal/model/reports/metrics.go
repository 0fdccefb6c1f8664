package reports

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"max.ks1230/bills-bot/internal/api/digest"
)

var counterDigests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "billsbot",
		Subsystem: "reports",
		Name:      "digests_total",
	},
	[]string{"source", "kind", "success"},
)

var counterDeliveries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "billsbot",
		Subsystem: "reports",
		Name:      "deliveries_total",
	},
	[]string{"status"},
)

func observeDigest(source string, result digest.Result) {
	counterDigests.WithLabelValues(source, result.Kind, strconv.FormatBool(result.Success())).Inc()
}

func observeDelivery(status string) {
	counterDeliveries.WithLabelValues(status).Inc()
}
