package currency

import "time"

// Currency pair served by the resolver.
const (
	BaseCurrency   = "USD"
	TargetCurrency = "BDT"
)

// FallbackRate is the hard-coded last-resort USD->BDT rate used when no
// cached rate exists and the provider is unreachable.
const FallbackRate = 120.0

const (
	// storeFreshnessWindow is how long a stored rate counts as fresh.
	storeFreshnessWindow = 12 * time.Hour

	// memoTTL is the in-process memo window; within it the resolver
	// answers without touching the store or the provider at all.
	memoTTL = 5 * time.Minute

	// fetchTimeout bounds one provider round trip.
	fetchTimeout = 8 * time.Second

	// DefaultProviderURL is the exchange-rate provider endpoint.
	DefaultProviderURL = "https://api.exchangerate-api.com/v4/latest/USD"
)
