package extract

import "strings"

// Conversion factors to canonical metric units.
const (
	lbsToKg = 0.453592
	inToCm  = 2.54
)

// NormalizeWeight converts a weight reading to kilograms. A unit token
// containing "lb" marks a pound value; anything else, including an
// absent token, is assumed to already be kilograms.
func NormalizeWeight(value float64, unit string) float64 {
	if strings.Contains(strings.ToLower(unit), "lb") {
		return value * lbsToKg
	}
	return value
}

// NormalizeHeight converts a height reading to centimeters. A unit
// token containing "in" marks an inch value; anything else, including
// an absent token, is assumed to already be centimeters.
func NormalizeHeight(value float64, unit string) float64 {
	if strings.Contains(strings.ToLower(unit), "in") {
		return value * inToCm
	}
	return value
}
