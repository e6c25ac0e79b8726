// Package config loads and validates paycheck plan files. All structural
// validation — required fields, numeric ranges, cadence and goal-type
// vocabulary — happens here, at the boundary; the allocation engine assumes
// well-typed input and only ever rejects a negative paycheck itself.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// Plan is the on-disk configuration snapshot: one paycheck, the obligations
// and goals to fund from it, and the allocation settings.
type Plan struct {
	PaycheckAmount decimal.Decimal          `yaml:"paycheck_amount" json:"paycheck_amount"`
	Bills          []domain.Bill            `yaml:"bills" json:"bills"`
	Goals          []domain.Goal            `yaml:"goals" json:"goals"`
	Settings       domain.AllocationOptions `yaml:"settings" json:"settings"`
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML or JSON file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan checks the structural invariants the engine does not
// re-check: non-negative amounts, known cadences and goal types, due days
// inside 1-31, percent values inside [0,100], and coherent ranges.
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if plan.PaycheckAmount.IsNegative() {
		return fmt.Errorf("paycheck_amount must be non-negative, got %s", plan.PaycheckAmount)
	}

	for i, b := range plan.Bills {
		if err := ip.validateBill(&b); err != nil {
			return fmt.Errorf("bill %d (%s): %w", i, b.Name, err)
		}
	}
	for i, g := range plan.Goals {
		if err := ip.validateGoal(&g); err != nil {
			return fmt.Errorf("goal %d (%s): %w", i, g.Name, err)
		}
	}
	for i, b := range plan.Settings.Bonuses {
		if err := ip.validateBonus(&b); err != nil {
			return fmt.Errorf("bonus %d (%s): %w", i, b.Name, err)
		}
	}
	return ip.validateSettings(&plan.Settings)
}

func (ip *InputParser) validateBill(b *domain.Bill) error {
	if b.Name == "" {
		return fmt.Errorf("name is required")
	}
	if b.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative, got %s", b.Amount)
	}
	if b.Cadence != "" && !knownCadence(b.Cadence) {
		return fmt.Errorf("unknown cadence %q", b.Cadence)
	}
	if b.DueDay != 0 && (b.DueDay < 1 || b.DueDay > 31) {
		return fmt.Errorf("due_day must be between 1 and 31, got %d", b.DueDay)
	}
	return nil
}

func (ip *InputParser) validateGoal(g *domain.Goal) error {
	if g.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch g.Type {
	case domain.GoalPercent:
		if g.Value.IsNegative() || g.Value.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("percent value must be between 0 and 100, got %s", g.Value)
		}
	case domain.GoalFixed:
		if g.Value.IsNegative() {
			return fmt.Errorf("fixed value must be non-negative, got %s", g.Value)
		}
	default:
		return fmt.Errorf("type must be %q or %q, got %q", domain.GoalPercent, domain.GoalFixed, g.Type)
	}
	return nil
}

func (ip *InputParser) validateBonus(b *domain.BonusIncome) error {
	if b.Min.IsNegative() {
		return fmt.Errorf("min must be non-negative, got %s", b.Min)
	}
	if b.Max.LessThan(b.Min) {
		return fmt.Errorf("max (%s) must be >= min (%s)", b.Max, b.Min)
	}
	if b.Cadence != "" && !knownCadence(b.Cadence) {
		return fmt.Errorf("unknown cadence %q", b.Cadence)
	}
	return nil
}

func (ip *InputParser) validateSettings(s *domain.AllocationOptions) error {
	switch s.PercentApply {
	case "", domain.PercentOnGross, domain.PercentOnRemainder:
	default:
		return fmt.Errorf("percent_apply must be %q or %q, got %q",
			domain.PercentOnGross, domain.PercentOnRemainder, s.PercentApply)
	}
	if s.PayCadence != "" && !knownCadence(s.PayCadence) {
		return fmt.Errorf("unknown pay_cadence %q", s.PayCadence)
	}
	if s.PayFrequencyDays < 0 {
		return fmt.Errorf("pay_frequency_days must be non-negative, got %d", s.PayFrequencyDays)
	}
	if r := s.PaycheckRange; r != nil {
		if r.Min.IsNegative() {
			return fmt.Errorf("paycheck_range.min must be non-negative, got %s", r.Min)
		}
		if r.Max.LessThan(r.Min) {
			return fmt.Errorf("paycheck_range.max (%s) must be >= min (%s)", r.Max, r.Min)
		}
	}
	if s.NextPaycheckDate != nil && !s.CurrentDate.IsZero() &&
		s.NextPaycheckDate.Before(s.CurrentDate) {
		return fmt.Errorf("next_paycheck_date (%s) is before current_date (%s)",
			s.NextPaycheckDate.Format("2006-01-02"), s.CurrentDate.Format("2006-01-02"))
	}
	return nil
}

func knownCadence(c domain.Cadence) bool {
	for _, k := range domain.KnownCadences() {
		if c == k {
			return true
		}
	}
	return false
}
