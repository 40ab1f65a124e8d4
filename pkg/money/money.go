package money

import (
	"math"
	"strconv"
	"strings"
)

// epsilon counters binary floating-point drift before rounding, so that
// values like 2.675 round up to 2.68 instead of truncating to 2.67.
const epsilon = 2.220446049250313e-16

// SanitizeGstRate normalizes a GST percentage: NaN, infinite and negative
// inputs become 0, everything else is rounded to 2 decimal places.
// Idempotent: SanitizeGstRate(SanitizeGstRate(x)) == SanitizeGstRate(x).
func SanitizeGstRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0
	}
	return math.Round(rate*100) / 100
}

// RoundCurrency rounds an amount to 2 decimal places, half away from zero.
// Applying it twice is a no-op.
func RoundCurrency(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Round((amount+epsilon)*100) / 100
}

// FormatCurrency renders an amount as an en-IN currency string with exactly
// 2 fraction digits, e.g. ₹1,23,456.78. Purely presentational.
func FormatCurrency(amount float64) string {
	rounded := RoundCurrency(amount)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	fixed := strconv.FormatFloat(rounded, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian applies Indian digit grouping: the last three digits form one
// group, the remainder is grouped in pairs (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
