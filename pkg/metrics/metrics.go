package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safecity_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safecity_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CityLookupMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safecity_city_lookup_misses_total",
			Help: "Total number of city lookups that matched no prediction row",
		},
		[]string{"route"},
	)

	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "safecity_dataset_rows",
			Help: "Number of rows in the loaded prediction table",
		},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "safecity_dataset_load_duration_seconds",
			Help: "Time spent loading the prediction table at startup",
		},
	)
)

// RecordAPIRequest records an API request metric. route is the registered path pattern,
// not the request path, to keep label cardinality bounded.
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordCityLookupMiss(route string) {
	CityLookupMisses.WithLabelValues(route).Inc()
}

func RecordDatasetLoad(rows int, duration time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadDuration.Set(duration.Seconds())
}
