package tui

import (
	"fmt"
	"strings"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
	"github.com/pwgo/paycheck-waterfall/internal/output"
)

// View renders the current what-if state.
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n" +
			HelpStyle.Render("q quit")
	}
	if m.result == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Paycheck Waterfall — What-If"))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Paycheck ") +
		ValueStyle.Render(output.FormatCurrency(m.result.Meta.Paycheck)))
	if m.result.Meta.BonusEstimate.IsPositive() {
		b.WriteString(LabelStyle.Render("  expected bonus ") +
			ValueStyle.Render(output.FormatCurrency(m.result.Meta.BonusEstimate)))
	}
	base := m.settings.PercentApply
	if base == "" {
		base = domain.PercentOnGross
	}
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  window %d days  percent base ", m.result.Meta.DaysAhead)))
	b.WriteString(ValueStyle.Render(string(base)))
	b.WriteString("\n\n")

	if len(m.result.Bills) > 0 {
		b.WriteString(SectionStyle.Render("Bills"))
		b.WriteString("\n")
		for _, bill := range m.result.Bills {
			name := bill.Name
			if bill.Urgent {
				name = UrgentStyle.Render(name + " !")
			}
			line := fmt.Sprintf("  %-26s %10s / %-10s", name,
				output.FormatCurrency(bill.Allocated), output.FormatCurrency(bill.Required))
			if bill.Remaining.IsPositive() {
				line += ShortStyle.Render(" short " + output.FormatCurrency(bill.Remaining))
			} else {
				line += FundedStyle.Render(" funded")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(m.result.Goals) > 0 {
		b.WriteString(SectionStyle.Render("Goals"))
		b.WriteString("\n")
		for _, goal := range m.result.Goals {
			b.WriteString(fmt.Sprintf("  %-26s %10s / %-10s\n", goal.Name,
				output.FormatCurrency(goal.Allocated), output.FormatCurrency(goal.Desired)))
		}
		b.WriteString("\n")
	}

	b.WriteString(LabelStyle.Render("Bill funding "))
	b.WriteString(m.fundingBar.ViewAs(m.fundingRatio()))
	b.WriteString("\n")

	b.WriteString(GuiltFreeStyle.Render("Guilt-free: " + output.FormatCurrency(m.result.GuiltFree)))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ adjust paycheck  g percent base  r reset  q quit"))
	return b.String()
}
