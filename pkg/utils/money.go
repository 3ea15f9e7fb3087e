package utils

import "math"

// ToCents converts a decimal currency amount to integer minor units.
// All monetary arithmetic in the system is done in cents so aggregation
// results are exact; decimals exist only at the API boundary.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer minor units back to a decimal amount
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
