package domain

// Setting names used in the calculation_settings table
const (
	SettingExpPerHour      = "exp_per_hour"
	SettingBaseCostPerHour = "base_cost_per_hour"
)

// CalculationSettings holds the two tunables the pricing engine reads.
type CalculationSettings struct {
	ExpPerHour         float64 `json:"exp_per_hour"`
	BaseCostPerHourUSD float64 `json:"base_cost_per_hour_usd"`
}

// LevelFeeRule is an operator-configured surcharge applied to steps whose
// starting level falls within [FromLevel, ToLevel] (inclusive).
type LevelFeeRule struct {
	ID               string  `json:"id"`
	FromLevel        int     `json:"from_level"`
	ToLevel          int     `json:"to_level"`
	AdditionalFeeUSD float64 `json:"additional_fee_usd"`
}

// Contains reports whether the rule applies to a step starting at level.
func (r LevelFeeRule) Contains(level int) bool {
	return level >= r.FromLevel && level <= r.ToLevel
}
