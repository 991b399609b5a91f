package settings

import "time"

// Fallback tunables used when the settings store has never been reachable.
// A quote must always be producible, so these mirror the seeded defaults.
const (
	DefaultExpPerHour         = 9000.0
	DefaultBaseCostPerHourUSD = 0.2083
)

const (
	// CacheTTL is how long a fetched snapshot is served without refetching.
	CacheTTL = 5 * time.Minute

	// fetchTimeout bounds a single settings store round trip.
	fetchTimeout = 10 * time.Second
)
