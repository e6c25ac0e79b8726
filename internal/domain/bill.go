package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a recurring or one-time obligation to fund out of a
// paycheck. Names are display labels, not identifiers; two bills may share
// one.
//
// Due-date information arrives in one of two shapes: a legacy day-of-month
// integer (1-31) or an explicit next-due calendar date. When both are set
// the explicit date wins. Bills are immutable input; the engine attaches all
// derived fields (urgency, required amount) to AllocatedBill records instead.
type Bill struct {
	Name    string          `yaml:"name" json:"name"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
	Cadence Cadence         `yaml:"cadence" json:"cadence"`

	// DueDay is the legacy day-of-month representation. Zero means absent.
	DueDay int `yaml:"due_day,omitempty" json:"due_day,omitempty"`
	// DueDate is the explicit next-due date. Authoritative when non-nil.
	DueDate *time.Time `yaml:"due_date,omitempty" json:"due_date,omitempty"`
}

// HasDueInfo reports whether the bill carries any due-date representation.
func (b Bill) HasDueInfo() bool {
	return b.DueDate != nil || b.DueDay > 0
}
