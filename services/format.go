package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR formats a float64 amount into Indian Rupee notation.
// It uses the Indian numbering system where, after the rightmost 3 digits,
// digits are grouped in pairs (e.g., ₹1,23,45,678.90).
// The result always includes exactly 2 decimal places. This is the
// on-screen convention; exported documents use FormatRupees instead.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	// Format with 2 decimal places.
	raw := fmt.Sprintf("%.2f", amount)

	// Split into integer and decimal parts.
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	// Apply Indian grouping to the integer part.
	formatted := applyIndianGrouping(intPart)

	result := "₹" + formatted + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatRupees formats an amount for the exported document: "Rs. " plus the
// amount rounded to the nearest rupee with Indian grouping. Paise are never
// shown in the document even though upstream totals retain them.
func FormatRupees(amount float64) string {
	rounded := math.Round(amount)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	result := "Rs. " + applyIndianGrouping(fmt.Sprintf("%.0f", rounded))
	if negative {
		result = "-" + result
	}
	return result
}

// FormatQuantity renders a quantity for display: exactly one decimal digit
// for products sold in fractional units, a rounded whole number otherwise.
func FormatQuantity(q float64, allowFractional bool) string {
	if allowFractional {
		return fmt.Sprintf("%.1f", q)
	}
	return fmt.Sprintf("%.0f", math.Round(q))
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
