package domain

import "github.com/shopspring/decimal"

// GoalType distinguishes percentage-of-base goals from fixed-amount goals.
type GoalType string

const (
	GoalPercent GoalType = "percent"
	GoalFixed   GoalType = "fixed"
)

// Goal represents a savings or allocation target funded after bills.
// Percent goals hold percentage points in Value (10 means 10%); fixed goals
// hold a currency amount.
type Goal struct {
	Name  string          `yaml:"name" json:"name"`
	Type  GoalType        `yaml:"type" json:"type"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}
