// Package billing converts elapsed session time into a capped charge and reward.
// Everything here is pure: no I/O, no clocks, no shared state.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// RewardMultiplier is the number of X4PN reward units minted per USDC of cost.
var RewardMultiplier = decimal.NewFromInt(10)

// RateScale is the number of fractional digits kept for rates and charges,
// matching the numeric(38,18) columns they are stored in.
const RateScale int32 = 18

const secondsPerMinute = 60

// Result is the outcome of a single settlement computation.
type Result struct {
	// Cost is the USDC amount to debit, never negative and never above the available balance.
	Cost decimal.Decimal
	// Reward is Cost * RewardMultiplier.
	Reward decimal.Decimal
	// SecondsPaid is the number of whole seconds Cost actually covers.
	SecondsPaid int64
	// Elapsed is the number of whole seconds between lastSettledAt and now (0 on clock skew).
	Elapsed int64
	// Capped is true when the cost was limited by the available balance.
	Capped bool
}

// RatePerSecond derives the per-second rate shown on a session, rounded to RateScale.
// Charges are computed from the per-minute rate so this rounding never reaches a balance.
func RatePerSecond(ratePerMinute decimal.Decimal) decimal.Decimal {
	return ratePerMinute.DivRound(decimal.NewFromInt(secondsPerMinute), RateScale)
}

// ElapsedSeconds returns the whole seconds between from and to, clamped at zero.
func ElapsedSeconds(from, to time.Time) int64 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// ComputeSettlement computes the cost and reward for the window [lastSettledAt, now].
//
// When availableBalance is non-nil the cost is capped to it: a balance that cannot cover the
// whole window is depleted completely rather than charged for a partial second.
func ComputeSettlement(
	ratePerSecond decimal.Decimal,
	lastSettledAt, now time.Time,
	availableBalance *decimal.Decimal,
) Result {
	return compute(ratePerSecond, 1, lastSettledAt, now, availableBalance)
}

// ComputeMinuteRateSettlement is ComputeSettlement for a rate quoted per minute.
// The cost is ratePerMinute*elapsed/60 truncated to RateScale, so whole minutes
// charge exactly the node's rate and capped seconds are never undercounted.
func ComputeMinuteRateSettlement(
	ratePerMinute decimal.Decimal,
	lastSettledAt, now time.Time,
	availableBalance *decimal.Decimal,
) Result {
	return compute(ratePerMinute, secondsPerMinute, lastSettledAt, now, availableBalance)
}

// compute charges rate/per for every elapsed second.
func compute(
	rate decimal.Decimal,
	per int64,
	lastSettledAt, now time.Time,
	availableBalance *decimal.Decimal,
) Result {
	elapsed := ElapsedSeconds(lastSettledAt, now)
	divisor := decimal.NewFromInt(per)

	rawCost := rate.Mul(decimal.NewFromInt(elapsed))
	if per != 1 {
		rawCost, _ = rawCost.QuoRem(divisor, RateScale)
	}

	cost := rawCost
	capped := false
	if availableBalance != nil && rawCost.GreaterThan(*availableBalance) {
		cost = decimal.Max(decimal.Zero, *availableBalance)
		capped = true
	}
	if cost.IsNegative() {
		cost = decimal.Zero
	}

	var secondsPaid int64
	switch {
	case !rate.IsPositive():
		secondsPaid = 0
	case !capped:
		secondsPaid = elapsed
	default:
		// truncating quotient: floor for non-negative operands
		whole, _ := cost.Mul(divisor).QuoRem(rate, 0)
		secondsPaid = whole.IntPart()
	}

	return Result{
		Cost:        cost,
		Reward:      cost.Mul(RewardMultiplier),
		SecondsPaid: secondsPaid,
		Elapsed:     elapsed,
		Capped:      capped,
	}
}
