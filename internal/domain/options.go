package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PercentBase selects what percentage goals are measured against.
type PercentBase string

const (
	// PercentOnGross resolves percent goals against the full paycheck plus
	// expected bonus income.
	PercentOnGross PercentBase = "gross"
	// PercentOnRemainder resolves percent goals against whatever is left
	// after bills.
	PercentOnRemainder PercentBase = "remainder"
)

// DefaultPayWindowDays is the pay window assumed when neither an explicit
// next-paycheck date nor a legacy day count is supplied.
const DefaultPayWindowDays = 14

// PaycheckRange bounds the expected paycheck. Min separates baseline funds
// from surplus: anything above Min is allocated in a second, surplus pass.
type PaycheckRange struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// AllocationOptions carries the timing and configuration context for a
// single allocation call. The zero value is usable: every field has a
// documented default applied by the engine.
type AllocationOptions struct {
	// PercentApply selects the percent-goal base. Defaults to gross.
	PercentApply PercentBase `yaml:"percent_apply,omitempty" json:"percent_apply,omitempty"`

	// PayCadence is the paycheck cadence, used to derive the pay window
	// when no explicit next-paycheck date is given.
	PayCadence Cadence `yaml:"pay_cadence,omitempty" json:"pay_cadence,omitempty"`

	// PayFrequencyDays is the legacy day-count fallback for the pay window.
	PayFrequencyDays int `yaml:"pay_frequency_days,omitempty" json:"pay_frequency_days,omitempty"`

	// PaycheckRange separates baseline funds from surplus. When nil the
	// range collapses to the paycheck amount and no surplus pass runs.
	PaycheckRange *PaycheckRange `yaml:"paycheck_range,omitempty" json:"paycheck_range,omitempty"`

	// Bonuses lists active variable income sources. Defaults to empty.
	Bonuses []BonusIncome `yaml:"bonuses,omitempty" json:"bonuses,omitempty"`

	// CurrentDate is the reference "today". The zero value means the
	// caller's wall-clock now.
	CurrentDate time.Time `yaml:"current_date,omitempty" json:"current_date,omitempty"`

	// NextPaycheckDate, when set, fixes the pay window exactly.
	NextPaycheckDate *time.Time `yaml:"next_paycheck_date,omitempty" json:"next_paycheck_date,omitempty"`
}
