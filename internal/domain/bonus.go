package domain

import "github.com/shopspring/decimal"

// BonusIncome represents a variable income source such as tips, commission,
// or overtime. The engine reduces each bonus to a single expected value per
// allocation call (range midpoint prorated to the pay window); it never
// models the distribution shape beyond the midpoint.
type BonusIncome struct {
	Name      string          `yaml:"name" json:"name"`
	Cadence   Cadence         `yaml:"cadence" json:"cadence"`
	Min       decimal.Decimal `yaml:"min" json:"min"`
	Max       decimal.Decimal `yaml:"max" json:"max"`
	Recurring bool            `yaml:"recurring" json:"recurring"`
}

// Midpoint returns the center of the [min,max] range. An inverted range
// (max < min) yields zero rather than an error; such bonuses contribute no
// expected income.
func (b BonusIncome) Midpoint() decimal.Decimal {
	if b.Max.LessThan(b.Min) {
		return decimal.Zero
	}
	return b.Min.Add(b.Max).Div(decimal.NewFromInt(2))
}
