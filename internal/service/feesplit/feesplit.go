// Package feesplit is the single source of truth for the platform
// economics: the fee rate constant and the rounding rule live here and
// nowhere else.
package feesplit

import "math"

// PlatformFeeRate is the global platform commission rate.
const PlatformFeeRate = 0.10

// Split is the division of a booking total into platform fee and
// provider payout.
type Split struct {
	Fee            float64
	ProviderAmount float64
}

// Calculate splits total into fee and provider payout.
// The fee is rounded to cents; the provider amount is derived by
// subtraction so Fee + ProviderAmount == total holds exactly under
// rounding. Intended for total >= 0.
func Calculate(total float64) Split {
	fee := round2(total * PlatformFeeRate)
	return Split{
		Fee:            fee,
		ProviderAmount: total - fee,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
