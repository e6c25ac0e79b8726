package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// estimateBonuses reduces every bonus source to a single expected scalar
// for the pay window: the range midpoint scaled by daysAhead over the
// cadence length, clamped at 1. The clamp means a cadence shorter than the
// window still contributes one midpoint, never multiples.
//
// Inverted ranges and unrecognized cadences contribute zero; nothing here
// can fail. The estimate feeds the baseline pool as a scalar only — it
// never becomes a ledger entry of its own.
func estimateBonuses(bonuses []domain.BonusIncome, daysAhead int) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bonuses {
		length, ok := b.Cadence.LengthDays()
		if !ok {
			continue
		}
		mid := b.Midpoint()
		if !mid.IsPositive() {
			continue
		}
		ratio := decimal.NewFromInt(int64(daysAhead)).Div(decimal.NewFromInt(int64(length)))
		if ratio.GreaterThan(decimal.NewFromInt(1)) {
			ratio = decimal.NewFromInt(1)
		}
		total = total.Add(mid.Mul(ratio))
	}
	return total
}
