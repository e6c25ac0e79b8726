package domain

// Cadence identifies how often a bill or bonus recurs.
type Cadence string

const (
	CadenceOneTime       Cadence = "one-time"
	CadenceEveryPaycheck Cadence = "every-paycheck"
	CadenceWeekly        Cadence = "weekly"
	CadenceBiweekly      Cadence = "biweekly"
	CadenceSemiMonthly   Cadence = "semi-monthly"
	CadenceMonthly       Cadence = "monthly"
	CadenceQuarterly     Cadence = "quarterly"
	CadenceAnnual        Cadence = "annual"
)

// MonthlyCadenceDays is the fallback cycle length used when a bill carries a
// cadence outside the known set.
const MonthlyCadenceDays = 30

// cadenceDays maps each recurring cadence to its nominal cycle length in
// days. One-time and every-paycheck obligations have no cycle length; they
// are always owed in full.
var cadenceDays = map[Cadence]int{
	CadenceWeekly:      7,
	CadenceBiweekly:    14,
	CadenceSemiMonthly: 15,
	CadenceMonthly:     MonthlyCadenceDays,
	CadenceQuarterly:   90,
	CadenceAnnual:      365,
}

// LengthDays returns the cadence's cycle length in days. The second return
// is false for one-time, every-paycheck, and unrecognized cadences.
func (c Cadence) LengthDays() (int, bool) {
	days, ok := cadenceDays[c]
	return days, ok
}

// KnownCadences lists every cadence value accepted in plan files, in
// display order.
func KnownCadences() []Cadence {
	return []Cadence{
		CadenceOneTime,
		CadenceEveryPaycheck,
		CadenceWeekly,
		CadenceBiweekly,
		CadenceSemiMonthly,
		CadenceMonthly,
		CadenceQuarterly,
		CadenceAnnual,
	}
}
