// Package calculation implements the paycheck allocation engine: a pure,
// synchronous pipeline that distributes a single paycheck across bills,
// savings goals, and guilt-free spending.
//
// The pipeline runs six stages in fixed order: input normalization (due-date
// resolution and pay-window computation), bonus estimation, bill
// prioritization, two-pass waterfall allocation, proportional goal
// distribution, and result assembly with a single rounding boundary. No
// stage performs I/O or mutates its inputs; every invocation is independent
// and may run concurrently with any other.
package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
	"github.com/pwgo/paycheck-waterfall/pkg/dateutil"
)

// ErrNegativePaycheck is the engine's single validation error. Every other
// anomalous input degrades gracefully via defaulting.
var ErrNegativePaycheck = errors.New("paycheck amount must be non-negative")

// Engine orchestrates the allocation pipeline. It holds no per-call state;
// a single Engine is safe for concurrent use.
type Engine struct {
	Logger Logger
}

// NewEngine creates an allocation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op
// default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// payWindow is the resolved timing context for one allocation call.
type payWindow struct {
	current   time.Time
	next      time.Time
	daysAhead int
}

// Allocate distributes a single paycheck across bills, goals, and
// guilt-free spending. It returns an error only for a negative paycheck;
// all other anomalous inputs are absorbed via documented defaults. Inputs
// are never mutated, so repeated calls against the same snapshot yield
// identical results.
func (e *Engine) Allocate(paycheck decimal.Decimal, bills []domain.Bill, goals []domain.Goal, opts domain.AllocationOptions) (*domain.AllocationResult, error) {
	if paycheck.IsNegative() {
		return nil, fmt.Errorf("allocate: %w (got %s)", ErrNegativePaycheck, paycheck.StringFixed(2))
	}

	window := resolveWindow(opts)
	e.Logger.Debugf("pay window: %s -> %s (%d days)",
		window.current.Format("2006-01-02"), window.next.Format("2006-01-02"), window.daysAhead)

	prioritized := prioritizeBills(bills, window)
	bonusEstimate := estimateBonuses(opts.Bonuses, window.daysAhead)

	rng := paycheckRange(paycheck, opts)
	funded := runWaterfall(prioritized, paycheck, rng, bonusEstimate)
	e.Logger.Debugf("bills funded: baseline used %s, surplus allocated %s, remaining %s",
		funded.baselineUsed, funded.surplusAllocated, funded.remainingAfterBills)

	grossBase := paycheck.Add(bonusEstimate)
	distributed := distributeGoals(goals, percentApply(opts), grossBase, funded.remainingAfterBills)

	return assembleResult(paycheck, bonusEstimate, window, funded, distributed), nil
}

// resolveWindow applies the option defaults for the pay window: an explicit
// next-paycheck date wins, then the legacy day count, then the pay
// cadence's cycle length, then the 14-day default. A next date at or before
// the current date collapses the window to zero days.
func resolveWindow(opts domain.AllocationOptions) payWindow {
	current := opts.CurrentDate
	if current.IsZero() {
		current = time.Now()
	}
	current = dateutil.Midnight(current)

	var next time.Time
	if opts.NextPaycheckDate != nil {
		next = dateutil.Midnight(*opts.NextPaycheckDate)
	} else {
		days := opts.PayFrequencyDays
		if days <= 0 {
			if length, ok := opts.PayCadence.LengthDays(); ok {
				days = length
			} else {
				days = domain.DefaultPayWindowDays
			}
		}
		next = current.AddDate(0, 0, days)
	}

	daysAhead := dateutil.DaysBetween(current, next)
	if daysAhead < 0 {
		daysAhead = 0
	}
	return payWindow{current: current, next: next, daysAhead: daysAhead}
}

// paycheckRange defaults the baseline/surplus split to the paycheck itself,
// which disables the surplus pass entirely.
func paycheckRange(paycheck decimal.Decimal, opts domain.AllocationOptions) domain.PaycheckRange {
	if opts.PaycheckRange == nil {
		return domain.PaycheckRange{Min: paycheck, Max: paycheck}
	}
	return *opts.PaycheckRange
}

func percentApply(opts domain.AllocationOptions) domain.PercentBase {
	if opts.PercentApply == domain.PercentOnRemainder {
		return domain.PercentOnRemainder
	}
	return domain.PercentOnGross
}
