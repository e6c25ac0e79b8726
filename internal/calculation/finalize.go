package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// displayPrecision is the number of decimal places in the assembled result.
const displayPrecision = 2

// round2 is the single rounding boundary of the pipeline. decimal.Round
// rounds half away from zero, which is the display semantics we want.
// Nothing upstream may round: intermediate stages carry full precision so
// that drift cannot compound across bills and goals.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPrecision)
}

// assembleResult builds the final breakdown from the stage outputs,
// rounding every monetary field exactly once. Output records are freshly
// allocated; nothing aliases the caller's inputs.
func assembleResult(paycheck, bonusEstimate decimal.Decimal, window payWindow, funded waterfallOutcome, distributed goalOutcome) *domain.AllocationResult {
	bills := make([]domain.AllocatedBill, 0, len(funded.bills))
	for _, fb := range funded.bills {
		ab := domain.AllocatedBill{
			Name:      fb.bill.Name,
			Amount:    round2(fb.bill.Amount),
			Required:  round2(fb.required),
			Allocated: round2(fb.allocated),
			Remaining: round2(fb.required.Sub(fb.allocated)),
			Urgent:    fb.urgent,
		}
		if fb.daysUntilDue != nil {
			days := *fb.daysUntilDue
			ab.DaysUntilDue = &days
		}
		if fb.dueDate != nil {
			due := *fb.dueDate
			ab.DueDate = &due
		}
		bills = append(bills, ab)
	}

	goals := make([]domain.AllocatedGoal, 0, len(distributed.goals))
	for _, g := range distributed.goals {
		g.Desired = round2(g.Desired)
		g.Allocated = round2(g.Allocated)
		goals = append(goals, g)
	}

	return &domain.AllocationResult{
		Bills:     bills,
		Goals:     goals,
		GuiltFree: round2(distributed.guiltFree),
		Meta: domain.AllocationMeta{
			Paycheck:            round2(paycheck),
			BonusEstimate:       round2(bonusEstimate),
			BaselineUsed:        round2(funded.baselineUsed),
			SurplusAllocated:    round2(funded.surplusAllocated),
			RemainingAfterBills: round2(funded.remainingAfterBills),
			DaysAhead:           window.daysAhead,
			NextPaycheckDate:    window.next,
		},
	}
}
