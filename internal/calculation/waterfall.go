package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// fundedBill pairs a prioritized bill with the amount the waterfall
// assigned to it.
type fundedBill struct {
	prioritizedBill
	allocated decimal.Decimal
}

// waterfallOutcome is the full output of the bill-funding stage.
type waterfallOutcome struct {
	bills               []fundedBill
	baselineUsed        decimal.Decimal
	surplusAllocated    decimal.Decimal
	remainingAfterBills decimal.Decimal
}

// runWaterfall distributes funds across the prioritized bills in two
// pools. The baseline pool — the paycheck capped at the configured range
// minimum, plus the bonus estimate — funds bills strictly in priority
// order. The surplus pool — whatever the paycheck carries above the range
// minimum — then runs two sub-passes over the same order: first topping up
// urgent bills with remaining shortfall, then closing out any bill whose
// shortfall it can cover completely. Fully satisfying one bill is preferred
// over partially satisfying two.
//
// Pools never go negative; once exhausted, later bills receive zero.
// Leftovers from both pools flow forward as remainingAfterBills.
func runWaterfall(prioritized []prioritizedBill, paycheck decimal.Decimal, rng domain.PaycheckRange, bonusEstimate decimal.Decimal) waterfallOutcome {
	baselinePay := paycheck
	if rng.Min.LessThan(baselinePay) {
		baselinePay = rng.Min
	}
	if baselinePay.IsNegative() {
		baselinePay = decimal.Zero
	}
	surplus := paycheck.Sub(baselinePay)
	if surplus.IsNegative() {
		surplus = decimal.Zero
	}
	baselinePool := baselinePay.Add(bonusEstimate)

	// Pass 1: baseline funds in priority order.
	bills := make([]fundedBill, 0, len(prioritized))
	baselineLeft := baselinePool
	for _, pb := range prioritized {
		alloc := pb.required
		if baselineLeft.LessThan(alloc) {
			alloc = baselineLeft
		}
		baselineLeft = baselineLeft.Sub(alloc)
		bills = append(bills, fundedBill{prioritizedBill: pb, allocated: alloc})
	}

	// Pass 2a: surplus tops up urgent bills with remaining shortfall.
	surplusLeft := surplus
	for i, fb := range bills {
		if !fb.urgent || surplusLeft.IsZero() {
			continue
		}
		shortfall := fb.required.Sub(fb.allocated)
		if !shortfall.IsPositive() {
			continue
		}
		extra := shortfall
		if surplusLeft.LessThan(extra) {
			extra = surplusLeft
		}
		bills[i].allocated = fb.allocated.Add(extra)
		surplusLeft = surplusLeft.Sub(extra)
	}

	// Pass 2b: surplus closes out any bill it can fully satisfy.
	for i, fb := range bills {
		if surplusLeft.IsZero() {
			break
		}
		shortfall := fb.required.Sub(fb.allocated)
		if !shortfall.IsPositive() || shortfall.GreaterThan(surplusLeft) {
			continue
		}
		bills[i].allocated = fb.allocated.Add(shortfall)
		surplusLeft = surplusLeft.Sub(shortfall)
	}

	return waterfallOutcome{
		bills:               bills,
		baselineUsed:        baselinePool.Sub(baselineLeft),
		surplusAllocated:    surplus.Sub(surplusLeft),
		remainingAfterBills: baselineLeft.Add(surplusLeft),
	}
}
