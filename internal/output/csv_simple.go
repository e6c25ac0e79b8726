package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

// CSVBreakdown implements the flat CSV output: one row per bill and goal,
// plus a guilt-free row, in the order the engine emitted them.
type CSVBreakdown struct{}

func (c CSVBreakdown) Name() string { return "csv" }

func (c CSVBreakdown) Format(result *domain.AllocationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "Name", "Required", "Allocated", "Remaining", "Urgent", "DaysUntilDue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, b := range result.Bills {
		days := ""
		if b.DaysUntilDue != nil {
			days = strconv.Itoa(*b.DaysUntilDue)
		}
		row := []string{
			"bill",
			b.Name,
			b.Required.StringFixed(2),
			b.Allocated.StringFixed(2),
			b.Remaining.StringFixed(2),
			strconv.FormatBool(b.Urgent),
			days,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for _, g := range result.Goals {
		row := []string{
			"goal",
			g.Name,
			g.Desired.StringFixed(2),
			g.Allocated.StringFixed(2),
			g.Desired.Sub(g.Allocated).StringFixed(2),
			"",
			"",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	guiltFree := []string{"guilt-free", "", "", result.GuiltFree.StringFixed(2), "", "", ""}
	if err := w.Write(guiltFree); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
