package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/settings"
)

// stubSettings serves a fixed snapshot and records force-refresh calls
type stubSettings struct {
	settings domain.CalculationSettings
	rules    []domain.LevelFeeRule
	forced   int
}

func (s *stubSettings) GetSettings(ctx context.Context, forceRefresh bool) domain.CalculationSettings {
	if forceRefresh {
		s.forced++
	}
	return s.settings
}

func (s *stubSettings) GetFeeRules(ctx context.Context, forceRefresh bool) []domain.LevelFeeRule {
	if forceRefresh {
		s.forced++
	}
	return s.rules
}

func TestServiceQuote_UsesSettingsSnapshot(t *testing.T) {
	stub := &stubSettings{
		settings: domain.CalculationSettings{ExpPerHour: 24196, BaseCostPerHourUSD: 2},
	}
	svc := NewService(stub)

	result := svc.Quote(context.Background(), 50, 51)

	// 24196 exp at 24196 exp/hour is exactly one hour
	assert.InDelta(t, 1.0, result.TotalTimeHours, floatTolerance)
	assert.InDelta(t, 2.0, result.TotalCostUSD, floatTolerance)
	assert.Zero(t, stub.forced, "quotes read the cache, they never force a refresh")
}

func TestServiceQuote_AppliesFeeRulesFromSnapshot(t *testing.T) {
	stub := &stubSettings{
		settings: domain.CalculationSettings{
			ExpPerHour:         settings.DefaultExpPerHour,
			BaseCostPerHourUSD: settings.DefaultBaseCostPerHourUSD,
		},
		rules: []domain.LevelFeeRule{{ID: "r", FromLevel: 50, ToLevel: 59, AdditionalFeeUSD: 4}},
	}
	svc := NewService(stub)

	withFee := svc.Quote(context.Background(), 50, 51)
	stub.rules = nil
	withoutFee := svc.Quote(context.Background(), 50, 51)

	assert.InDelta(t, withoutFee.TotalCostUSD+4, withFee.TotalCostUSD, floatTolerance)
}

func TestServiceQuoteToMax_MatchesExplicitCap(t *testing.T) {
	stub := &stubSettings{
		settings: domain.CalculationSettings{
			ExpPerHour:         settings.DefaultExpPerHour,
			BaseCostPerHourUSD: settings.DefaultBaseCostPerHourUSD,
		},
	}
	svc := NewService(stub)
	ctx := context.Background()

	assert.Equal(t, svc.Quote(ctx, 73, 100), svc.QuoteToMax(ctx, 73))
}
