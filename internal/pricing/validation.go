package pricing

import (
	"fmt"
	"sort"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

// ValidateFeeRules checks that the rule set is well formed: no inverted
// ranges and no overlapping ranges. Overlap does not change engine behavior
// (first match wins), but it almost always means a data-entry mistake, so
// the admin refresh surface runs this and logs what it finds.
func ValidateFeeRules(rules []domain.LevelFeeRule) error {
	for _, r := range rules {
		if r.FromLevel > r.ToLevel {
			return fmt.Errorf("%w: rule %s spans [%d, %d]", domain.ErrFeeRuleInverted, r.ID, r.FromLevel, r.ToLevel)
		}
	}

	sorted := append(rules[:0:0], rules...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FromLevel < sorted[j].FromLevel
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.FromLevel <= prev.ToLevel {
			return fmt.Errorf("%w: rule %s [%d, %d] and rule %s [%d, %d]",
				domain.ErrFeeRuleOverlap,
				prev.ID, prev.FromLevel, prev.ToLevel,
				cur.ID, cur.FromLevel, cur.ToLevel)
		}
	}

	return nil
}
