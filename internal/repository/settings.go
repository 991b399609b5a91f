package repository

import (
	"context"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

// Settings defines the interface for the settings store.
// The service only reads; writes happen through the admin surface.
type Settings interface {
	// GetCalculationSettings returns the named numeric settings as a map
	// keyed by setting name. Missing names are simply absent from the map.
	GetCalculationSettings(ctx context.Context) (map[string]float64, error)

	// GetFeeRules returns all level fee rules ordered by from_level then id.
	// That order is the engine's first-match-wins tie-break order.
	GetFeeRules(ctx context.Context) ([]domain.LevelFeeRule, error)
}
