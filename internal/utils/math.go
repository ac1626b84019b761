package utils

import "math/rand/v2"

// RandomFloat returns a uniform float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// DiminishingReturns maps value onto [0, 1) with value / (value + scale).
// scale is the input at which the output reaches 0.5. Negative values yield 0.
func DiminishingReturns(value, scale float64) float64 {
	if value <= 0 {
		return 0
	}
	return value / (value + scale)
}
