package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// goalOutcome is the output of the goal-distribution stage. Goals keep
// their input order.
type goalOutcome struct {
	goals     []domain.AllocatedGoal
	cap       decimal.Decimal
	guiltFree decimal.Decimal
}

// distributeGoals computes each goal's desired amount (percent goals
// against grossBase or remainingAfterBills per the configured base, fixed
// goals literally) and allocates the remainder after bills across them.
// When desire exceeds supply every goal is scaled by the same
// cap/desiredTotal factor, so scarcity is shared proportionally rather than
// first-come-first-served. The scaling residual goes to the goal with the
// largest desired amount — the least visible place to park a cent — with
// input order breaking ties.
func distributeGoals(goals []domain.Goal, base domain.PercentBase, grossBase, remainingAfterBills decimal.Decimal) goalOutcome {
	percentBase := grossBase
	if base == domain.PercentOnRemainder {
		percentBase = remainingAfterBills
	}

	out := make([]domain.AllocatedGoal, 0, len(goals))
	desiredTotal := decimal.Zero
	for _, g := range goals {
		value := g.Value
		if value.IsNegative() {
			value = decimal.Zero
		}
		var desired decimal.Decimal
		if g.Type == domain.GoalFixed {
			desired = value
		} else {
			desired = value.Div(oneHundred).Mul(percentBase)
		}
		desiredTotal = desiredTotal.Add(desired)
		out = append(out, domain.AllocatedGoal{
			Name:    g.Name,
			Type:    g.Type,
			Value:   g.Value,
			Desired: desired,
		})
	}

	cap := desiredTotal
	if remainingAfterBills.LessThan(cap) {
		cap = remainingAfterBills
	}
	if !desiredTotal.IsPositive() || !cap.IsPositive() {
		return goalOutcome{goals: out, cap: decimal.Zero, guiltFree: remainingAfterBills}
	}

	scale := cap.Div(desiredTotal)
	allocatedSum := decimal.Zero
	for i := range out {
		out[i].Allocated = out[i].Desired.Mul(scale)
		allocatedSum = allocatedSum.Add(out[i].Allocated)
	}

	// Division truncates at decimal.DivisionPrecision, so the scaled
	// amounts may not sum exactly to the cap.
	if residual := cap.Sub(allocatedSum); !residual.IsZero() {
		largest := 0
		for i := 1; i < len(out); i++ {
			if out[i].Desired.GreaterThan(out[largest].Desired) {
				largest = i
			}
		}
		out[largest].Allocated = out[largest].Allocated.Add(residual)
	}

	return goalOutcome{goals: out, cap: cap, guiltFree: remainingAfterBills.Sub(cap)}
}
