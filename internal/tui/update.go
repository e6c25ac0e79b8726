package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fundingBar.Width = msg.Width - 8
		if m.fundingBar.Width > 60 {
			m.fundingBar.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up", "k", "+":
		m.paycheck = m.paycheck.Add(paycheckStep)
		m.reallocate()
		return m, nil

	case "down", "j", "-":
		next := m.paycheck.Sub(paycheckStep)
		if next.IsNegative() {
			next = decimal.Zero
		}
		m.paycheck = next
		m.reallocate()
		return m, nil

	case "r":
		m.paycheck = m.plan.PaycheckAmount
		m.settings = m.plan.Settings
		m.reallocate()
		return m, nil

	case "g":
		if m.settings.PercentApply == domain.PercentOnRemainder {
			m.settings.PercentApply = domain.PercentOnGross
		} else {
			m.settings.PercentApply = domain.PercentOnRemainder
		}
		m.reallocate()
		return m, nil
	}
	return m, nil
}
