package repository

import (
	"context"
	"time"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

// Currency defines the interface for rate-source configuration and the
// server-side rate cache.
type Currency interface {
	// GetActiveRateSetting returns the single active rate-source row.
	// Returns domain.ErrSettingNotFound when no row is active.
	GetActiveRateSetting(ctx context.Context) (*domain.CurrencyRateSetting, error)

	// CreateDefaultRateSetting inserts the default setting (api, 120, active)
	// and returns it. Called only when no active row exists.
	CreateDefaultRateSetting(ctx context.Context) (*domain.CurrencyRateSetting, error)

	// GetCachedRate returns the most recent rate for the pair updated at or
	// after notBefore. A zero notBefore means any age is acceptable.
	// Returns domain.ErrRateNotFound when nothing matches.
	GetCachedRate(ctx context.Context, from, to string, notBefore time.Time) (*domain.CachedRate, error)

	// UpsertRate stores a rate keyed by currency pair, last writer wins.
	UpsertRate(ctx context.Context, rate domain.CachedRate) error
}
