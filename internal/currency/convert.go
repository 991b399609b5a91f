package currency

// Convert multiplies an already-computed USD amount by a resolved rate.
// Pure function; a non-positive rate is a caller programming error and is
// asserted against in tests rather than clamped here.
func Convert(amountUSD, rate float64) float64 {
	return amountUSD * rate
}
