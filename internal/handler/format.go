package handler

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var expPrinter = message.NewPrinter(language.English)

// formatHours renders fractional hours as "Xd Yh Zm", dropping leading
// zero units. 0 renders as "0m".
func formatHours(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	days := totalMinutes / (24 * 60)
	hrs := (totalMinutes % (24 * 60)) / 60
	mins := totalMinutes % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hrs, mins)
	case hrs > 0:
		return fmt.Sprintf("%dh %dm", hrs, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// formatMoney rounds to 2 decimal places for display. The engine itself
// never rounds; this is presentation only.
func formatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).Round(2).StringFixed(2)
}

// formatExperience renders experience with thousands separators.
func formatExperience(exp int) string {
	return expPrinter.Sprintf("%d", exp)
}
