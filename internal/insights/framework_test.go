package insights

import (
	"testing"

	"github.com/claude/reppulse/internal/goals"
)

// TestSelectFrameworkNilInsights verifies a fresh user keeps the
// goal-sampled framework.
func TestSelectFrameworkNilInsights(t *testing.T) {
	if got := SelectFramework(goals.FrameworkTabata, nil); got != goals.FrameworkTabata {
		t.Errorf("got %q, want tabata passthrough", got)
	}
}

// TestSelectFrameworkHighFatigue verifies that high fatigue forces the
// circuit structure regardless of the base.
func TestSelectFrameworkHighFatigue(t *testing.T) {
	ins := &Insights{FatigueTrend: 0.8}
	for _, base := range []goals.Framework{goals.FrameworkTabata, goals.FrameworkEMOM, goals.FrameworkAMRAP} {
		if got := SelectFramework(base, ins); got != goals.FrameworkCircuit {
			t.Errorf("base %q: got %q, want circuit", base, got)
		}
	}
}

// TestSelectFrameworkWidespreadUnderperformance verifies that flagged
// exercises above the rate limit force circuit.
func TestSelectFrameworkWidespreadUnderperformance(t *testing.T) {
	ins := &Insights{
		ExercisePerformance: map[string]ExercisePerformance{
			"Burpees":    {Underperformed: true},
			"Air Squats": {Underperformed: false},
		},
	}
	if got := SelectFramework(goals.FrameworkEMOM, ins); got != goals.FrameworkCircuit {
		t.Errorf("got %q, want circuit (underperform rate 0.5)", got)
	}
}

// TestSelectFrameworkModerateFatigueDowngradesTabata verifies the
// tabata-to-EMOM downgrade band, and that other bases pass through it.
func TestSelectFrameworkModerateFatigueDowngradesTabata(t *testing.T) {
	ins := &Insights{FatigueTrend: 0.6}
	if got := SelectFramework(goals.FrameworkTabata, ins); got != goals.FrameworkEMOM {
		t.Errorf("tabata base: got %q, want emom", got)
	}
	if got := SelectFramework(goals.FrameworkCircuit, ins); got != goals.FrameworkCircuit {
		t.Errorf("circuit base: got %q, want circuit unchanged", got)
	}
}

// TestSelectFrameworkStreakUpgrade verifies that a consistent fresh user
// on EMOM earns the tabata upgrade.
func TestSelectFrameworkStreakUpgrade(t *testing.T) {
	ins := &Insights{
		FatigueTrend:       0.2,
		StreakLength:       5,
		TimeOfDayAdherence: TimeOfDayAdherence{Consistency: 0.7},
	}
	if got := SelectFramework(goals.FrameworkEMOM, ins); got != goals.FrameworkTabata {
		t.Errorf("got %q, want tabata upgrade", got)
	}
	// Same signals on a non-EMOM base change nothing.
	if got := SelectFramework(goals.FrameworkAMRAP, ins); got != goals.FrameworkAMRAP {
		t.Errorf("got %q, want amrap unchanged", got)
	}
}

// TestSelectFrameworkErraticScheduleRelaxesTabata verifies that low
// scheduling consistency swaps tabata for AMRAP.
func TestSelectFrameworkErraticScheduleRelaxesTabata(t *testing.T) {
	ins := &Insights{
		FatigueTrend:       0.1,
		TimeOfDayAdherence: TimeOfDayAdherence{Consistency: 0.2},
	}
	if got := SelectFramework(goals.FrameworkTabata, ins); got != goals.FrameworkAMRAP {
		t.Errorf("got %q, want amrap", got)
	}
}

// TestSelectFrameworkUpgradeDoesNotFireAfterOverride verifies rule
// precedence: a fatigue override suppresses the streak upgrade.
func TestSelectFrameworkUpgradeDoesNotFireAfterOverride(t *testing.T) {
	ins := &Insights{
		FatigueTrend:       0.8,
		StreakLength:       10,
		TimeOfDayAdherence: TimeOfDayAdherence{Consistency: 0.9},
	}
	if got := SelectFramework(goals.FrameworkEMOM, ins); got != goals.FrameworkCircuit {
		t.Errorf("got %q, want circuit (fatigue wins)", got)
	}
}
