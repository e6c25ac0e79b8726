package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
	"github.com/pwgo/paycheck-waterfall/pkg/dateutil"
)

// Bills with no resolvable due date sort after every dated bill within the
// non-urgent group.
const noDueDateSortDays = 1 << 30

// prioritizedBill pairs an input bill with the fields derived during
// normalization and prioritization. The input Bill itself is never touched.
type prioritizedBill struct {
	bill         domain.Bill
	dueDate      *time.Time
	daysUntilDue *int
	urgent       bool
	required     decimal.Decimal
}

// prioritizeBills normalizes due dates, sizes each bill's required amount
// for the pay window, and returns the bills in allocation order: urgent
// bills (due before the next paycheck) first by ascending days-until-due,
// then the rest by ascending days-until-due, with ties broken by descending
// amount so partial funding covers larger obligations first. The sort is
// stable, so identical inputs always produce identical order.
func prioritizeBills(bills []domain.Bill, window payWindow) []prioritizedBill {
	out := make([]prioritizedBill, 0, len(bills))
	for _, b := range bills {
		pb := prioritizedBill{bill: b}
		if due := resolveDueDate(b, window.current); due != nil {
			pb.dueDate = due
			days := dateutil.DaysBetween(window.current, *due)
			pb.daysUntilDue = &days
			pb.urgent = days < window.daysAhead
		}
		pb.required = requiredAmount(b, pb.daysUntilDue, window.daysAhead)
		out = append(out, pb)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].urgent != out[j].urgent {
			return out[i].urgent
		}
		di, dj := sortDays(out[i]), sortDays(out[j])
		if di != dj {
			return di < dj
		}
		return out[i].bill.Amount.GreaterThan(out[j].bill.Amount)
	})
	return out
}

func sortDays(pb prioritizedBill) int {
	if pb.daysUntilDue == nil {
		return noDueDateSortDays
	}
	return *pb.daysUntilDue
}

// resolveDueDate collapses the two due-date representations into one
// concrete calendar date, or nil when the bill carries neither. An explicit
// date always wins over the legacy day-of-month value; the legacy value is
// clamped to the month length and rolled forward when the day has already
// passed. Downstream stages only ever see the resolved form.
func resolveDueDate(b domain.Bill, current time.Time) *time.Time {
	if b.DueDate != nil {
		due := dateutil.Midnight(*b.DueDate)
		return &due
	}
	if b.DueDay > 0 {
		due := dateutil.ResolveDayOfMonth(b.DueDay, current)
		return &due
	}
	return nil
}

// requiredAmount sizes how much of a bill belongs to the current pay
// window:
//
//   - one-time and every-paycheck bills are owed in full, always
//   - a bill due within the window must clear before the next paycheck, so
//     it is owed in full
//   - a monthly bill due within 30 days is owed in full rather than being
//     prorated across sub-monthly pay cycles
//   - everything else is prorated by window length over cadence length,
//     capped at the full amount
//
// Unrecognized cadences prorate against the monthly cycle length. A
// negative amount is treated as zero.
func requiredAmount(b domain.Bill, daysUntilDue *int, daysAhead int) decimal.Decimal {
	amount := b.Amount
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	switch b.Cadence {
	case domain.CadenceOneTime, domain.CadenceEveryPaycheck:
		return amount
	}
	if daysUntilDue != nil {
		if *daysUntilDue <= daysAhead {
			return amount
		}
		if b.Cadence == domain.CadenceMonthly && *daysUntilDue <= domain.MonthlyCadenceDays {
			return amount
		}
	}

	length, ok := b.Cadence.LengthDays()
	if !ok {
		length = domain.MonthlyCadenceDays
	}
	ratio := decimal.NewFromInt(int64(daysAhead)).Div(decimal.NewFromInt(int64(length)))
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}
	return amount.Mul(ratio)
}
