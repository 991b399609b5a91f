package domain

// LevelStep is one unit of progression in the level table. Every known
// record spans exactly one level (ToLevel = FromLevel + 1).
type LevelStep struct {
	FromLevel        int `json:"from_level"`
	ToLevel          int `json:"to_level"`
	ExperienceNeeded int `json:"experience_needed"`
}

// QuoteStep is a priced step of a quote.
type QuoteStep struct {
	FromLevel        int     `json:"from_level"`
	ToLevel          int     `json:"to_level"`
	ExperienceNeeded int     `json:"experience_needed"`
	Hours            float64 `json:"hours"`
	CostUSD          float64 `json:"cost_usd"`
}

// QuoteResult is the output of one pricing engine invocation.
// Totals always equal the sum of the corresponding per-step fields.
// All arithmetic is unrounded; formatting belongs to the caller.
type QuoteResult struct {
	TotalTimeHours  float64     `json:"total_time_hours"`
	TotalCostUSD    float64     `json:"total_cost_usd"`
	TotalExperience int         `json:"total_experience"`
	Steps           []QuoteStep `json:"steps"`
}
