package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesComputed,
			Help: HelpTextQuotesComputed,
		},
		[]string{LabelKind},
	)

	RateResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateResolutions,
			Help: HelpTextRateResolutions,
		},
		[]string{LabelQuality},
	)

	SettingsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettingsCacheHits,
			Help: HelpTextSettingsCacheHits,
		},
	)

	SettingsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettingsCacheMisses,
			Help: HelpTextSettingsCacheMisses,
		},
	)
)
