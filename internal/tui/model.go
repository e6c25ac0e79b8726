// Package tui implements the interactive what-if screen: step the paycheck
// amount up and down, flip the percent-goal base, and watch the waterfall
// re-allocate live. Re-running the engine on every keypress is safe because
// allocation is a pure function of its inputs.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/calculation"
	"github.com/pwgo/paycheck-waterfall/internal/config"
	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// paycheckStep is how much one keypress moves the what-if paycheck.
var paycheckStep = decimal.NewFromInt(25)

// Model represents the what-if application state.
type Model struct {
	plan     *config.Plan
	engine   *calculation.Engine
	paycheck decimal.Decimal
	settings domain.AllocationOptions

	result *domain.AllocationResult
	err    error

	fundingBar progress.Model

	width  int
	height int
}

// NewModel creates the what-if model for a loaded plan and runs the first
// allocation.
func NewModel(plan *config.Plan) Model {
	m := Model{
		plan:       plan,
		engine:     calculation.NewEngine(),
		paycheck:   plan.PaycheckAmount,
		settings:   plan.Settings,
		fundingBar: progress.New(progress.WithDefaultGradient()),
	}
	m.reallocate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// reallocate re-runs the engine against the current what-if inputs.
func (m *Model) reallocate() {
	m.result, m.err = m.engine.Allocate(m.paycheck, m.plan.Bills, m.plan.Goals, m.settings)
}

// fundingRatio is the share of total required bill money actually funded,
// in [0,1], for the progress bar.
func (m Model) fundingRatio() float64 {
	if m.result == nil {
		return 0
	}
	required := m.result.TotalBillsRequired()
	if !required.IsPositive() {
		return 1
	}
	ratio, _ := m.result.TotalBillsAllocated().Div(required).Float64()
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
