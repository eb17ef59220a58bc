package amm

import "math"

// SwapFee is the pool's fixed proportional fee, taken on the input side of a
// swap. 0.15%, matching Balancer LBP defaults. Not configurable per run.
const SwapFee = 0.0015

// SpotPrice returns the pool's instantaneous price of token A in units of
// token B: (B/Wb) / (A/Wa).
//
// Returns 0 if any input is <= 0. A zero price is a degenerate-pool
// sentinel, not an error; callers treat it as "no valid price, no trade".
func SpotPrice(tokenABalance, tokenBBalance, tokenAWeight, tokenBWeight float64) float64 {
	if tokenABalance <= 0 || tokenBBalance <= 0 || tokenAWeight <= 0 || tokenBWeight <= 0 {
		return 0
	}
	return (tokenBBalance / tokenBWeight) / (tokenABalance / tokenAWeight)
}

// WeightFromPrice inverts the spot-price formula: it returns the token-A
// weight at which the pool's spot price equals desiredPrice for the given
// balances.
//
// The result is clamped to [0.01, 0.99]; Balancer-style pools disallow
// weights at the extremes. Degenerate inputs (zero token A balance or a
// non-positive price) return a fixed fallback weight of 0.9.
func WeightFromPrice(tokenABalance, tokenBBalance, desiredPrice float64) float64 {
	if tokenABalance == 0 || desiredPrice <= 0 {
		return 0.9
	}
	ratio := tokenBBalance / (tokenABalance * desiredPrice)
	weight := 1 / (1 + ratio)
	return clamp(weight, 0.01, 0.99)
}

// SwapOutput computes the token A received for a fixed token B input under
// the weighted constant-value invariant, with SwapFee charged on the input:
//
//	out = A * (1 - ((B + in*(1-fee)) / B) ^ (-Wb/Wa))
//
// The result is clamped to [0, A]; the pool never pays out more than it
// holds. A non-positive balance ratio (only reachable from an invalid
// zero/negative balance) drains the pool: the full token A balance is
// returned. A numeric fault in the exponentiation (NaN/Inf from pathological
// weight ratios) yields 0 for the step rather than propagating.
func SwapOutput(tokenBIn, tokenABalance, tokenBBalance, tokenAWeight, tokenBWeight float64) float64 {
	if tokenBIn <= 0 {
		return 0
	}
	tokenBInNet := tokenBIn * (1 - SwapFee)
	ratioB := (tokenBBalance + tokenBInNet) / tokenBBalance
	if ratioB <= 0 {
		return tokenABalance
	}
	exponent := -tokenBWeight / tokenAWeight
	scaled := math.Pow(ratioB, exponent)
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return 0
	}
	out := tokenABalance * (1 - scaled)
	return clamp(out, 0, tokenABalance)
}

// LinearSwapOutput is the simplified fill model used by the first generation
// of this tool: token A out = token B in / spot price, ignoring fees and
// invariant curvature. Returns 0 when the price is degenerate.
func LinearSwapOutput(tokenBIn, price float64) float64 {
	if tokenBIn <= 0 || price <= 0 {
		return 0
	}
	return tokenBIn / price
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
