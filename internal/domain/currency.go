package domain

import "time"

// RateSource is the operator's choice of where the display rate comes from.
type RateSource string

const (
	RateSourceAPI    RateSource = "api"
	RateSourceCustom RateSource = "custom"
)

// CurrencyRateSetting is the single active row describing the rate source.
type CurrencyRateSetting struct {
	ID         string     `json:"id"`
	Source     RateSource `json:"rate_source"`
	CustomRate float64    `json:"custom_rate"`
	IsActive   bool       `json:"is_active"`
}

// CachedRate is a previously fetched exchange rate kept in the rate store.
type CachedRate struct {
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RateQuality tags how a resolved rate was obtained so callers can tell
// degraded answers from normal ones.
type RateQuality string

const (
	// RateQualityFresh means the rate was fetched from the provider just now.
	RateQualityFresh RateQuality = "fresh"
	// RateQualityCached means the rate came from the store within its freshness window.
	RateQualityCached RateQuality = "cached"
	// RateQualityStale means the provider failed and an expired stored rate was used.
	RateQualityStale RateQuality = "stale"
	// RateQualityFallback means no rate was available anywhere; the hard-coded constant was used.
	RateQualityFallback RateQuality = "fallback"
	// RateQualityCustom means the operator configured a fixed rate.
	RateQualityCustom RateQuality = "custom"
)

// ResolvedRate is the resolver's answer. It always carries a usable rate;
// Quality records how good that answer is.
type ResolvedRate struct {
	Rate      float64     `json:"rate"`
	Quality   RateQuality `json:"quality"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Degraded reports whether the rate came from anything other than a fresh
// fetch, a valid cache entry, or an operator-fixed value.
func (r ResolvedRate) Degraded() bool {
	return r.Quality == RateQualityStale || r.Quality == RateQualityFallback
}
