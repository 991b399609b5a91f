package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

func TestValidateLevelRange(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		desired  int
		expected error
	}{
		{"Valid range", 50, 51, nil},
		{"Full span", 50, 100, nil},
		{"Below minimum", 49, 60, domain.ErrCurrentLevelTooLow},
		{"Above maximum", 50, 101, domain.ErrDesiredLevelTooHigh},
		{"Equal levels", 60, 60, domain.ErrLevelOrder},
		{"Inverted", 70, 60, domain.ErrLevelOrder},
		{"Both violations reports minimum first", 10, 200, domain.ErrCurrentLevelTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLevelRange(tt.current, tt.desired)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("Nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Validation failure maps fields", func(t *testing.T) {
		err := GetValidator().ValidateStruct(ConvertRequest{AmountUSD: -5})
		assert.Error(t, err)

		fields := FormatValidationError(err)
		assert.Contains(t, fields, "amountusd")
	})
}
