package pricing

import (
	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/leveltable"
)

// ComputeQuote prices the progression from currentLevel to desiredLevel.
//
// Step selection is half-open: steps with FromLevel in
// [currentLevel, desiredLevel) are included, so "60 to 63" prices the
// 60->61, 61->62 and 62->63 steps and nothing else.
//
// currentLevel >= desiredLevel returns a zero result with no steps; the
// caller decides whether that is worth reporting to a user. Levels outside
// the supported table simply select fewer (or no) steps - input validation
// is a caller concern.
//
// All arithmetic is unrounded floating point. Rounding is presentation.
func ComputeQuote(currentLevel, desiredLevel int, settings domain.CalculationSettings, feeRules []domain.LevelFeeRule) domain.QuoteResult {
	result := domain.QuoteResult{Steps: []domain.QuoteStep{}}

	if currentLevel >= desiredLevel {
		return result
	}

	for _, step := range leveltable.AllRanges() {
		if step.FromLevel < currentLevel || step.FromLevel >= desiredLevel {
			continue
		}

		hours := float64(step.ExperienceNeeded) / settings.ExpPerHour
		cost := hours*settings.BaseCostPerHourUSD + additionalFee(step.FromLevel, feeRules)

		result.Steps = append(result.Steps, domain.QuoteStep{
			FromLevel:        step.FromLevel,
			ToLevel:          step.ToLevel,
			ExperienceNeeded: step.ExperienceNeeded,
			Hours:            hours,
			CostUSD:          cost,
		})

		result.TotalTimeHours += hours
		result.TotalCostUSD += cost
		result.TotalExperience += step.ExperienceNeeded
	}

	return result
}

// ComputeTotalToMax prices the progression from currentLevel to the level
// cap. Callers use it for the "cost to reach max level" figure when only
// the current level is known.
func ComputeTotalToMax(currentLevel int, settings domain.CalculationSettings, feeRules []domain.LevelFeeRule) domain.QuoteResult {
	return ComputeQuote(currentLevel, leveltable.MaxLevel, settings, feeRules)
}

// additionalFee returns the surcharge for a step starting at fromLevel.
// When rules overlap the first match in slice order wins; keeping rules
// non-overlapping is an authoring concern (see ValidateFeeRules).
func additionalFee(fromLevel int, feeRules []domain.LevelFeeRule) float64 {
	for _, rule := range feeRules {
		if rule.Contains(fromLevel) {
			return rule.AdditionalFeeUSD
		}
	}
	return 0
}
