// Package observability defines Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts post store operations by name and outcome.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_store_operations_total",
		Help: "Total number of post store operations by outcome",
	}, []string{"operation", "outcome"})

	// StoreCollectionSize is the number of posts seen on the last load.
	StoreCollectionSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inkwell_store_collection_size",
		Help: "Number of posts in the collection at the last load",
	})
)

// ObserveStore records the outcome of a store operation.
func ObserveStore(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreOperations.WithLabelValues(operation, outcome).Inc()
}
