// Package output renders allocation results for the CLI in console, JSON,
// and CSV form. It only formats: every number comes from the engine
// verbatim, already rounded at the engine's single rounding boundary.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a report generator writing to stdout.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Out: os.Stdout}
}

// GenerateReport renders the result in the requested format.
func GenerateReport(result *domain.AllocationResult, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(result)
	case "json":
		return generator.GenerateJSONReport(result)
	case "csv":
		return generator.GenerateCSVReport(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders the waterfall breakdown as a console
// summary: bills in allocation order, goals, and the guilt-free remainder.
func (rg *ReportGenerator) GenerateConsoleReport(result *domain.AllocationResult) error {
	w := rg.Out
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w, "PAYCHECK WATERFALL BREAKDOWN")
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Paycheck:        %s\n", FormatCurrency(result.Meta.Paycheck))
	if result.Meta.BonusEstimate.IsPositive() {
		fmt.Fprintf(w, "Expected bonus:  %s\n", FormatCurrency(result.Meta.BonusEstimate))
	}
	fmt.Fprintf(w, "Next paycheck:   %s (%d days)\n",
		result.Meta.NextPaycheckDate.Format("2006-01-02"), result.Meta.DaysAhead)
	fmt.Fprintln(w)

	if len(result.Bills) > 0 {
		fmt.Fprintln(w, "BILLS (allocation order)")
		fmt.Fprintln(w, strings.Repeat("-", 65))
		for _, b := range result.Bills {
			marker := " "
			if b.Urgent {
				marker = "!"
			}
			fmt.Fprintf(w, "%s %-24s required %10s  funded %10s", marker, b.Name,
				FormatCurrency(b.Required), FormatCurrency(b.Allocated))
			if b.Remaining.IsPositive() {
				fmt.Fprintf(w, "  short %s", FormatCurrency(b.Remaining))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if len(result.Goals) > 0 {
		fmt.Fprintln(w, "GOALS")
		fmt.Fprintln(w, strings.Repeat("-", 65))
		for _, g := range result.Goals {
			fmt.Fprintf(w, "  %-24s desired  %10s  funded %10s\n", g.Name,
				FormatCurrency(g.Desired), FormatCurrency(g.Allocated))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "GUILT-FREE TO SPEND: %s\n", FormatCurrency(result.GuiltFree))
	return nil
}

// GenerateBreakdownReport renders the detailed view: per-bill urgency,
// due dates, required-vs-nominal sizing, and the meta block.
func (rg *ReportGenerator) GenerateBreakdownReport(result *domain.AllocationResult) error {
	w := rg.Out
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w, "DETAILED ALLOCATION BREAKDOWN")
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w)

	for i, b := range result.Bills {
		fmt.Fprintf(w, "BILL %d: %s\n", i+1, b.Name)
		fmt.Fprintf(w, "  Nominal amount:  %s\n", FormatCurrency(b.Amount))
		fmt.Fprintf(w, "  Required now:    %s\n", FormatCurrency(b.Required))
		fmt.Fprintf(w, "  Allocated:       %s\n", FormatCurrency(b.Allocated))
		fmt.Fprintf(w, "  Shortfall:       %s\n", FormatCurrency(b.Remaining))
		if b.DueDate != nil {
			fmt.Fprintf(w, "  Due:             %s", b.DueDate.Format("2006-01-02"))
			if b.DaysUntilDue != nil {
				fmt.Fprintf(w, " (in %d days)", *b.DaysUntilDue)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  Urgent:          %t\n", b.Urgent)
		fmt.Fprintln(w)
	}

	for i, g := range result.Goals {
		fmt.Fprintf(w, "GOAL %d: %s (%s)\n", i+1, g.Name, g.Type)
		fmt.Fprintf(w, "  Desired:         %s\n", FormatCurrency(g.Desired))
		fmt.Fprintf(w, "  Allocated:       %s\n", FormatCurrency(g.Allocated))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "META")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Paycheck:              %s\n", FormatCurrency(result.Meta.Paycheck))
	fmt.Fprintf(w, "  Bonus estimate:        %s\n", FormatCurrency(result.Meta.BonusEstimate))
	fmt.Fprintf(w, "  Baseline used:         %s\n", FormatCurrency(result.Meta.BaselineUsed))
	fmt.Fprintf(w, "  Surplus allocated:     %s\n", FormatCurrency(result.Meta.SurplusAllocated))
	fmt.Fprintf(w, "  Remaining after bills: %s\n", FormatCurrency(result.Meta.RemainingAfterBills))
	fmt.Fprintf(w, "  Guilt-free:            %s\n", FormatCurrency(result.GuiltFree))
	return nil
}

// GenerateJSONReport writes the result as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(result *domain.AllocationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(rg.Out, string(data))
	return err
}

// GenerateCSVReport writes the flat CSV rendering.
func (rg *ReportGenerator) GenerateCSVReport(result *domain.AllocationResult) error {
	data, err := CSVBreakdown{}.Format(result)
	if err != nil {
		return err
	}
	_, err = rg.Out.Write(data)
	return err
}

// FormatCurrency formats a decimal as a currency string.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
