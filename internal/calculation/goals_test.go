package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwgo/paycheck-waterfall/internal/domain"
)

func TestDistributeGoals_PercentAndFixedDesired(t *testing.T) {
	goals := []domain.Goal{
		{Name: "Invest", Type: domain.GoalPercent, Value: dec(10)},
		{Name: "Emergency", Type: domain.GoalFixed, Value: dec(100)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(2000), dec(1000))

	require.Len(t, out.goals, 2)
	assert.True(t, out.goals[0].Desired.Equal(dec(200)), "10%% of gross 2000")
	assert.True(t, out.goals[1].Desired.Equal(dec(100)))
	assert.True(t, out.goals[0].Allocated.Equal(dec(200)))
	assert.True(t, out.goals[1].Allocated.Equal(dec(100)))
	assert.True(t, out.guiltFree.Equal(dec(700)))
}

func TestDistributeGoals_RemainderBase(t *testing.T) {
	goals := []domain.Goal{{Name: "Invest", Type: domain.GoalPercent, Value: dec(10)}}

	out := distributeGoals(goals, domain.PercentOnRemainder, dec(2000), dec(600))

	assert.True(t, out.goals[0].Desired.Equal(dec(60)), "10%% of remainder 600")
}

func TestDistributeGoals_ScarcityScalesProportionally(t *testing.T) {
	goals := []domain.Goal{
		{Name: "A", Type: domain.GoalFixed, Value: dec(200)},
		{Name: "B", Type: domain.GoalFixed, Value: dec(200)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(500), dec(300))

	assert.True(t, out.goals[0].Allocated.Equal(dec(150)))
	assert.True(t, out.goals[1].Allocated.Equal(dec(150)))
	assert.True(t, out.guiltFree.IsZero())
}

func TestDistributeGoals_RatiosEqualUnderScarcity(t *testing.T) {
	goals := []domain.Goal{
		{Name: "A", Type: domain.GoalFixed, Value: dec(123.45)},
		{Name: "B", Type: domain.GoalFixed, Value: dec(678.90)},
		{Name: "C", Type: domain.GoalPercent, Value: dec(7.5)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(1500), dec(400))

	tolerance := dec(0.0001)
	var firstRatio decimal.Decimal
	for i, g := range out.goals {
		require.True(t, g.Desired.IsPositive())
		ratio := g.Allocated.Div(g.Desired)
		if i == 0 {
			firstRatio = ratio
			continue
		}
		assert.True(t, ratio.Sub(firstRatio).Abs().LessThan(tolerance),
			"goal %s ratio %s differs from %s", g.Name, ratio, firstRatio)
	}
}

func TestDistributeGoals_ResidualGoesToLargestDesired(t *testing.T) {
	goals := []domain.Goal{
		{Name: "Small", Type: domain.GoalFixed, Value: dec(100)},
		{Name: "Large", Type: domain.GoalFixed, Value: dec(200)},
		{Name: "Mid", Type: domain.GoalFixed, Value: dec(150)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(1000), dec(100))

	// Scaled sum must land exactly on the cap; any division residue is
	// folded into Large, never spread further.
	total := decimal.Zero
	for _, g := range out.goals {
		total = total.Add(g.Allocated)
	}
	assert.True(t, total.Equal(dec(100)), "allocations sum to the cap, got %s", total)
	assert.True(t, out.goals[1].Allocated.GreaterThanOrEqual(out.goals[0].Allocated))
}

func TestDistributeGoals_NoFundsOrNoGoals(t *testing.T) {
	goals := []domain.Goal{{Name: "A", Type: domain.GoalFixed, Value: dec(50)}}

	out := distributeGoals(goals, domain.PercentOnGross, dec(100), dec(0))
	assert.True(t, out.goals[0].Allocated.IsZero())
	assert.True(t, out.guiltFree.IsZero())

	out = distributeGoals(nil, domain.PercentOnGross, dec(100), dec(75))
	assert.Empty(t, out.goals)
	assert.True(t, out.guiltFree.Equal(dec(75)), "no goals leaves the remainder guilt-free")
}

func TestDistributeGoals_NegativeValueDefaultsToZero(t *testing.T) {
	goals := []domain.Goal{
		{Name: "Broken", Type: domain.GoalFixed, Value: dec(-40)},
		{Name: "Fine", Type: domain.GoalFixed, Value: dec(60)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(500), dec(500))

	assert.True(t, out.goals[0].Desired.IsZero())
	assert.True(t, out.goals[0].Allocated.IsZero())
	assert.True(t, out.goals[1].Allocated.Equal(dec(60)))
}

func TestDistributeGoals_InputOrderPreserved(t *testing.T) {
	goals := []domain.Goal{
		{Name: "Z", Type: domain.GoalFixed, Value: dec(10)},
		{Name: "A", Type: domain.GoalFixed, Value: dec(20)},
	}

	out := distributeGoals(goals, domain.PercentOnGross, dec(100), dec(100))

	assert.Equal(t, "Z", out.goals[0].Name)
	assert.Equal(t, "A", out.goals[1].Name)
}
