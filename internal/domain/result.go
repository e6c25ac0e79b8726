package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocatedBill is the output record for one bill. Required may be less
// than the bill's nominal amount when the bill is not yet due and sits on a
// cadence longer than the pay window.
type AllocatedBill struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Required  decimal.Decimal `json:"required"`
	Allocated decimal.Decimal `json:"allocated"`
	Remaining decimal.Decimal `json:"remaining"`

	// DaysUntilDue is nil when the bill has no resolvable due date.
	DaysUntilDue *int       `json:"daysUntilDue,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Urgent       bool       `json:"urgent"`
}

// AllocatedGoal is the output record for one goal.
type AllocatedGoal struct {
	Name      string          `json:"name"`
	Type      GoalType        `json:"type"`
	Value     decimal.Decimal `json:"value"`
	Desired   decimal.Decimal `json:"desired"`
	Allocated decimal.Decimal `json:"allocated"`
}

// AllocationMeta records the intermediate figures behind a result, for
// display and debugging. All values are rounded to display precision along
// with the rest of the result.
type AllocationMeta struct {
	Paycheck            decimal.Decimal `json:"paycheck"`
	BonusEstimate       decimal.Decimal `json:"bonusEstimate"`
	BaselineUsed        decimal.Decimal `json:"baselineUsed"`
	SurplusAllocated    decimal.Decimal `json:"surplusAllocated"`
	RemainingAfterBills decimal.Decimal `json:"remainingAfterBills"`
	DaysAhead           int             `json:"daysAhead"`
	NextPaycheckDate    time.Time       `json:"nextPaycheckDate"`
}

// AllocationResult is the complete breakdown for a single paycheck. Bills
// appear in allocation (priority) order; goals keep their input order.
// GuiltFree is what remains after every bill and goal allocation.
type AllocationResult struct {
	Bills     []AllocatedBill `json:"bills"`
	Goals     []AllocatedGoal `json:"goals"`
	GuiltFree decimal.Decimal `json:"guiltFree"`
	Meta      AllocationMeta  `json:"meta"`
}

// TotalBillsAllocated sums the allocated column across bills.
func (r *AllocationResult) TotalBillsAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Bills {
		total = total.Add(b.Allocated)
	}
	return total
}

// TotalGoalsAllocated sums the allocated column across goals.
func (r *AllocationResult) TotalGoalsAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, g := range r.Goals {
		total = total.Add(g.Allocated)
	}
	return total
}

// TotalBillsRequired sums the required column across bills.
func (r *AllocationResult) TotalBillsRequired() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Bills {
		total = total.Add(b.Required)
	}
	return total
}
