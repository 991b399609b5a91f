package postgres

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericToFloat64 safely converts pgtype.Numeric to float64.
// Returns (0, error) if conversion fails instead of silently ignoring errors.
func numericToFloat64(n pgtype.Numeric) (float64, error) {
	val, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToConvertNumeric, err)
	}
	return val.Float64, nil
}

// float64ToNumeric converts a float64 to pgtype.Numeric for insertion.
func float64ToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	// Scan through the string form to avoid binary float artifacts
	if err := n.Scan(fmt.Sprintf("%v", f)); err != nil {
		return pgtype.Numeric{Int: big.NewInt(0), Valid: true}
	}
	return n
}
