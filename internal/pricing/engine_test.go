package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/leveltable"
	"github.com/levelupbd/LevelBoost_Go/internal/settings"
)

const floatTolerance = 1e-9

func defaultSettings() domain.CalculationSettings {
	return domain.CalculationSettings{
		ExpPerHour:         settings.DefaultExpPerHour,
		BaseCostPerHourUSD: settings.DefaultBaseCostPerHourUSD,
	}
}

func TestComputeQuote_HalfOpenRange(t *testing.T) {
	result := ComputeQuote(60, 63, defaultSettings(), nil)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, 60, result.Steps[0].FromLevel)
	assert.Equal(t, 61, result.Steps[1].FromLevel)
	assert.Equal(t, 62, result.Steps[2].FromLevel)
	for _, step := range result.Steps {
		assert.NotEqual(t, 63, step.FromLevel, "step starting at the desired level is excluded")
	}
}

func TestComputeQuote_ReflexiveAndInvertedYieldZero(t *testing.T) {
	for _, tc := range []struct {
		name             string
		current, desired int
	}{
		{"equal levels", 60, 60},
		{"inverted levels", 60, 59},
		{"inverted at cap", 100, 50},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeQuote(tc.current, tc.desired, defaultSettings(), nil)

			assert.Zero(t, result.TotalTimeHours)
			assert.Zero(t, result.TotalCostUSD)
			assert.Zero(t, result.TotalExperience)
			assert.Empty(t, result.Steps)
		})
	}
}

func TestComputeQuote_StepSumInvariant(t *testing.T) {
	rules := []domain.LevelFeeRule{
		{ID: "r1", FromLevel: 60, ToLevel: 69, AdditionalFeeUSD: 5},
		{ID: "r2", FromLevel: 80, ToLevel: 100, AdditionalFeeUSD: 12.5},
	}

	result := ComputeQuote(55, 95, defaultSettings(), rules)
	require.NotEmpty(t, result.Steps)

	var hours, cost float64
	var exp int
	for _, step := range result.Steps {
		hours += step.Hours
		cost += step.CostUSD
		exp += step.ExperienceNeeded
	}

	assert.InDelta(t, hours, result.TotalTimeHours, floatTolerance)
	assert.InDelta(t, cost, result.TotalCostUSD, floatTolerance)
	assert.Equal(t, exp, result.TotalExperience)
}

func TestComputeQuote_FeeBoundary(t *testing.T) {
	rules := []domain.LevelFeeRule{
		{ID: "r1", FromLevel: 60, ToLevel: 69, AdditionalFeeUSD: 5},
	}
	cfg := defaultSettings()

	withFee := ComputeQuote(69, 70, cfg, rules)
	withoutFee := ComputeQuote(70, 71, cfg, rules)
	baseline69 := ComputeQuote(69, 70, cfg, nil)
	baseline70 := ComputeQuote(70, 71, cfg, nil)

	require.Len(t, withFee.Steps, 1)
	require.Len(t, withoutFee.Steps, 1)

	assert.InDelta(t, baseline69.TotalCostUSD+5, withFee.TotalCostUSD, floatTolerance,
		"step starting at the rule's inclusive upper bound gets the fee")
	assert.InDelta(t, baseline70.TotalCostUSD, withoutFee.TotalCostUSD, floatTolerance,
		"step starting just above the rule gets no fee")
}

func TestComputeQuote_OverlappingRulesFirstMatchWins(t *testing.T) {
	rules := []domain.LevelFeeRule{
		{ID: "first", FromLevel: 60, ToLevel: 70, AdditionalFeeUSD: 3},
		{ID: "second", FromLevel: 65, ToLevel: 75, AdditionalFeeUSD: 9},
	}

	result := ComputeQuote(65, 66, defaultSettings(), rules)
	baseline := ComputeQuote(65, 66, defaultSettings(), nil)

	require.Len(t, result.Steps, 1)
	assert.InDelta(t, baseline.TotalCostUSD+3, result.TotalCostUSD, floatTolerance,
		"rule listed first takes precedence on overlap")
}

func TestComputeQuote_FallbackDeterminism(t *testing.T) {
	// Single step 50->51 needs 24196 exp. With the documented fallback
	// constants: 24196/9000 ~ 2.6884h, 2.6884*0.2083 ~ $0.5600.
	result := ComputeQuote(50, 51, defaultSettings(), nil)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, 24196, result.TotalExperience)
	assert.InDelta(t, 2.6884, result.TotalTimeHours, 0.0001)
	assert.InDelta(t, 0.5600, result.TotalCostUSD, 0.0001)
}

func TestComputeQuote_OutOfDomainSelectsNothing(t *testing.T) {
	// Below the table
	low := ComputeQuote(10, 20, defaultSettings(), nil)
	assert.Empty(t, low.Steps)

	// Partially below: only in-table steps are priced
	partial := ComputeQuote(45, 52, defaultSettings(), nil)
	require.Len(t, partial.Steps, 2)
	assert.Equal(t, 50, partial.Steps[0].FromLevel)
	assert.Equal(t, 51, partial.Steps[1].FromLevel)

	// Above the cap selects nothing beyond the table
	high := ComputeQuote(100, 110, defaultSettings(), nil)
	assert.Empty(t, high.Steps)
}

func TestComputeTotalToMax_EquivalentToQuoteToCap(t *testing.T) {
	rules := []domain.LevelFeeRule{
		{ID: "r1", FromLevel: 70, ToLevel: 89, AdditionalFeeUSD: 2},
	}
	cfg := defaultSettings()

	for level := leveltable.MinLevel; level < leveltable.MaxLevel; level++ {
		toMax := ComputeTotalToMax(level, cfg, rules)
		explicit := ComputeQuote(level, leveltable.MaxLevel, cfg, rules)
		assert.Equal(t, explicit, toMax, "level %d", level)
	}
}

func TestComputeQuote_FullSpanExperienceTotal(t *testing.T) {
	result := ComputeQuote(leveltable.MinLevel, leveltable.MaxLevel, defaultSettings(), nil)

	var want int
	for _, step := range leveltable.AllRanges() {
		want += step.ExperienceNeeded
	}
	assert.Equal(t, want, result.TotalExperience)
	assert.Len(t, result.Steps, leveltable.MaxLevel-leveltable.MinLevel)
}

func TestComputeQuote_NoRoundingInsideEngine(t *testing.T) {
	// With exp/hour chosen to produce repeating decimals, the totals must
	// still equal the exact step sums - any internal rounding would break it.
	cfg := domain.CalculationSettings{ExpPerHour: 7000, BaseCostPerHourUSD: 0.3333}
	result := ComputeQuote(50, 100, cfg, nil)

	var hours float64
	for _, step := range result.Steps {
		hours += step.Hours
	}
	assert.InDelta(t, hours, result.TotalTimeHours, floatTolerance)
}
