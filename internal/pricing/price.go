package pricing

import (
	"regexp"
	"strconv"
)

var nonPriceChars = regexp.MustCompile(`[^\d.]`)

// ParsePrice converts a price string like "$15" or "$0.10" to a float.
// Everything except digits and the decimal point is stripped; empty or
// unparsable input yields 0. Shared by extraction filtering and any
// downstream reporting.
func ParsePrice(priceStr string) float64 {
	if priceStr == "" || priceStr == "-" {
		return 0
	}
	cleaned := nonPriceChars.ReplaceAllString(priceStr, "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
