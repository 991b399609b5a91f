package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameQuotesComputed      = "quotes_computed_total"
	MetricNameRateResolutions     = "rate_resolutions_total"
	MetricNameSettingsCacheHits   = "settings_cache_hits_total"
	MetricNameSettingsCacheMisses = "settings_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextQuotesComputed      = "Total number of price quotes computed"
	HelpTextRateResolutions     = "Total number of currency rate resolutions by outcome quality"
	HelpTextSettingsCacheHits   = "Total number of settings reads served from the cache"
	HelpTextSettingsCacheMisses = "Total number of settings reads that required a fetch"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelQuality = "quality"
)

// Quote kinds for the quotes_computed_total metric
const (
	QuoteKindRange = "range"
	QuoteKindToMax = "to_max"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
