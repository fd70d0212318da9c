// Package metrics exposes Prometheus counters for batch dispatch.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kiransada/duebot/pkg/logger"
)

var (
	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duebot_batches_total",
		Help: "Number of spreadsheet batches processed.",
	})
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duebot_messages_sent_total",
		Help: "Number of reminder messages delivered to the gateway.",
	})
	RowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duebot_rows_skipped_total",
		Help: "Number of spreadsheet rows skipped.",
	})
)

// RecordBatch updates the counters for one finished batch.
func RecordBatch(sent, skipped int) {
	BatchesTotal.Inc()
	MessagesSent.Add(float64(sent))
	RowsSkipped.Add(float64(skipped))
}

// StartServer serves /metrics on addr in a background goroutine.
func StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		logger.Log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}
