package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

func window(current time.Time, daysAhead int) payWindow {
	return payWindow{
		current:   current,
		next:      current.AddDate(0, 0, daysAhead),
		daysAhead: daysAhead,
	}
}

func TestPrioritizeBills_UrgentBeforeNonUrgent(t *testing.T) {
	current := date(2026, time.January, 1)
	w := window(current, 14)
	in10 := date(2026, time.January, 11)
	in20 := date(2026, time.January, 21)
	in3 := date(2026, time.January, 4)

	bills := []domain.Bill{
		{Name: "NotYet", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDate: &in20},
		{Name: "Soonish", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDate: &in10},
		{Name: "Now", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDate: &in3},
	}

	out := prioritizeBills(bills, w)

	require.Len(t, out, 3)
	assert.Equal(t, "Now", out[0].bill.Name)
	assert.Equal(t, "Soonish", out[1].bill.Name)
	assert.Equal(t, "NotYet", out[2].bill.Name)
	assert.True(t, out[0].urgent)
	assert.True(t, out[1].urgent)
	assert.False(t, out[2].urgent)
}

func TestPrioritizeBills_TieBreaksByDescendingAmount(t *testing.T) {
	current := date(2026, time.January, 1)
	w := window(current, 14)
	due := date(2026, time.January, 5)

	bills := []domain.Bill{
		{Name: "Small", Amount: dec(50), Cadence: domain.CadenceMonthly, DueDate: &due},
		{Name: "Big", Amount: dec(900), Cadence: domain.CadenceMonthly, DueDate: &due},
		{Name: "Mid", Amount: dec(300), Cadence: domain.CadenceMonthly, DueDate: &due},
	}

	out := prioritizeBills(bills, w)

	assert.Equal(t, "Big", out[0].bill.Name)
	assert.Equal(t, "Mid", out[1].bill.Name)
	assert.Equal(t, "Small", out[2].bill.Name)
}

func TestPrioritizeBills_UndatedSortLast(t *testing.T) {
	current := date(2026, time.January, 1)
	w := window(current, 14)
	in20 := date(2026, time.January, 21)

	bills := []domain.Bill{
		{Name: "NoDate", Amount: dec(5000), Cadence: domain.CadenceMonthly},
		{Name: "Dated", Amount: dec(10), Cadence: domain.CadenceMonthly, DueDate: &in20},
	}

	out := prioritizeBills(bills, w)

	assert.Equal(t, "Dated", out[0].bill.Name)
	assert.Equal(t, "NoDate", out[1].bill.Name)
}

func TestPrioritizeBills_StableAcrossRuns(t *testing.T) {
	current := date(2026, time.January, 1)
	w := window(current, 14)
	bills := []domain.Bill{
		{Name: "A", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDay: 10},
		{Name: "B", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDay: 10},
		{Name: "C", Amount: dec(100), Cadence: domain.CadenceMonthly, DueDay: 10},
	}

	first := prioritizeBills(bills, w)
	second := prioritizeBills(bills, w)

	for i := range first {
		assert.Equal(t, first[i].bill.Name, second[i].bill.Name)
	}
	// Fully tied bills keep input order.
	assert.Equal(t, "A", first[0].bill.Name)
	assert.Equal(t, "B", first[1].bill.Name)
	assert.Equal(t, "C", first[2].bill.Name)
}

func TestResolveDueDate_ExplicitWinsOverLegacy(t *testing.T) {
	current := date(2026, time.March, 10)
	explicit := time.Date(2026, time.March, 20, 17, 30, 0, 0, time.FixedZone("EST", -5*3600))
	b := domain.Bill{Name: "Rent", Amount: dec(100), DueDay: 5, DueDate: &explicit}

	due := resolveDueDate(b, current)

	require.NotNil(t, due)
	assert.Equal(t, date(2026, time.March, 20), *due, "explicit date wins, normalized to UTC midnight")
}

func TestResolveDueDate_LegacyDayRollsForward(t *testing.T) {
	current := date(2026, time.March, 10)
	b := domain.Bill{Name: "Rent", Amount: dec(100), DueDay: 5}

	due := resolveDueDate(b, current)

	require.NotNil(t, due)
	assert.Equal(t, date(2026, time.April, 5), *due, "day 5 already passed, rolls to April")
}

func TestResolveDueDate_NoDueInfo(t *testing.T) {
	b := domain.Bill{Name: "Streaming", Amount: dec(15)}

	assert.Nil(t, resolveDueDate(b, date(2026, time.March, 10)))
}

func TestRequiredAmount_Sizing(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name         string
		bill         domain.Bill
		daysUntilDue *int
		daysAhead    int
		want         string
	}{
		{
			name:      "one-time always full",
			bill:      domain.Bill{Amount: dec(500), Cadence: domain.CadenceOneTime},
			daysAhead: 3,
			want:      "500",
		},
		{
			name:      "every-paycheck always full",
			bill:      domain.Bill{Amount: dec(80), Cadence: domain.CadenceEveryPaycheck},
			daysAhead: 3,
			want:      "80",
		},
		{
			name:         "due inside window is full",
			bill:         domain.Bill{Amount: dec(365), Cadence: domain.CadenceAnnual},
			daysUntilDue: intp(10),
			daysAhead:    14,
			want:         "365",
		},
		{
			name:         "due exactly on window edge is full",
			bill:         domain.Bill{Amount: dec(365), Cadence: domain.CadenceAnnual},
			daysUntilDue: intp(14),
			daysAhead:    14,
			want:         "365",
		},
		{
			name:         "monthly due within 30 days is never prorated",
			bill:         domain.Bill{Amount: dec(90), Cadence: domain.CadenceMonthly},
			daysUntilDue: intp(20),
			daysAhead:    14,
			want:         "90",
		},
		{
			name:         "quarterly outside window prorates",
			bill:         domain.Bill{Amount: dec(90), Cadence: domain.CadenceQuarterly},
			daysUntilDue: intp(45),
			daysAhead:    9,
			want:         "9", // 90 * 9/90
		},
		{
			name:      "undated weekly clamps at full amount",
			bill:      domain.Bill{Amount: dec(70), Cadence: domain.CadenceWeekly},
			daysAhead: 14,
			want:      "70", // ratio 14/7 clamps to 1
		},
		{
			name:      "undated annual prorates by window",
			bill:      domain.Bill{Amount: dec(365), Cadence: domain.CadenceAnnual},
			daysAhead: 73,
			want:      "73", // 365 * 73/365
		},
		{
			name:      "unknown cadence prorates as monthly",
			bill:      domain.Bill{Amount: dec(30), Cadence: "sometimes"},
			daysAhead: 15,
			want:      "15", // 30 * 15/30
		},
		{
			name:      "negative amount treated as zero",
			bill:      domain.Bill{Amount: dec(-40), Cadence: domain.CadenceMonthly},
			daysAhead: 30,
			want:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requiredAmount(tt.bill, tt.daysUntilDue, tt.daysAhead)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPrioritizeBills_OverdueExplicitDateIsUrgent(t *testing.T) {
	current := date(2026, time.February, 10)
	w := window(current, 14)
	past := date(2026, time.February, 5)
	bills := []domain.Bill{
		{Name: "Late", Amount: dec(200), Cadence: domain.CadenceMonthly, DueDate: &past},
	}

	out := prioritizeBills(bills, w)

	require.Len(t, out, 1)
	assert.True(t, out[0].urgent)
	require.NotNil(t, out[0].daysUntilDue)
	assert.Equal(t, -5, *out[0].daysUntilDue)
	assert.Equal(t, "200", out[0].required.String())
}
