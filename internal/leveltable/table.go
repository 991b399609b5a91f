// Package leveltable provides the canonical experience requirements for
// account levels 50 through 100. The data is compiled in and immutable.
package leveltable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	_ "embed"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

// Supported level domain. Quotes outside [MinLevel, MaxLevel] have no data.
const (
	MinLevel = 50
	MaxLevel = 100
)

//go:embed levels.csv
var levelsCSV []byte

var (
	loadOnce sync.Once
	ranges   []domain.LevelStep
	loadErr  error
)

// AllRanges returns the ordered, contiguous sequence of level steps.
// The returned slice is shared; callers must not mutate it.
func AllRanges() []domain.LevelStep {
	loadOnce.Do(func() {
		ranges, loadErr = parse(levelsCSV)
		if loadErr == nil {
			loadErr = verify(ranges)
		}
		if loadErr != nil {
			// The table is embedded at build time, so a parse failure is a
			// packaging bug, not a runtime condition.
			panic(fmt.Sprintf("leveltable: invalid embedded data: %v", loadErr))
		}
	})
	return ranges
}

func parse(data []byte) ([]domain.LevelStep, error) {
	r := csv.NewReader(bytes.NewReader(data))

	// Skip header row
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var steps []domain.LevelStep
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("expected 3 columns, got %d", len(record))
		}

		from, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid from_level %q: %w", record[0], err)
		}
		to, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("invalid to_level %q: %w", record[1], err)
		}
		exp, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid exp_needed %q: %w", record[2], err)
		}

		steps = append(steps, domain.LevelStep{
			FromLevel:        from,
			ToLevel:          to,
			ExperienceNeeded: exp,
		})
	}

	return steps, nil
}

// verify enforces the table invariants: ascending order, contiguity
// (each record's ToLevel equals the next record's FromLevel), full coverage
// of [MinLevel, MaxLevel], and non-negative experience.
func verify(steps []domain.LevelStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("table is empty")
	}
	if steps[0].FromLevel != MinLevel {
		return fmt.Errorf("table starts at %d, want %d", steps[0].FromLevel, MinLevel)
	}
	if steps[len(steps)-1].ToLevel != MaxLevel {
		return fmt.Errorf("table ends at %d, want %d", steps[len(steps)-1].ToLevel, MaxLevel)
	}
	for i, s := range steps {
		if s.FromLevel >= s.ToLevel {
			return fmt.Errorf("row %d: from_level %d not below to_level %d", i, s.FromLevel, s.ToLevel)
		}
		if s.ExperienceNeeded < 0 {
			return fmt.Errorf("row %d: negative experience %d", i, s.ExperienceNeeded)
		}
		if i > 0 && steps[i-1].ToLevel != s.FromLevel {
			return fmt.Errorf("row %d: gap between %d and %d", i, steps[i-1].ToLevel, s.FromLevel)
		}
	}
	return nil
}
