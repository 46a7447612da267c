package insights

import "github.com/claude/reppulse/internal/goals"

// Thresholds for the framework override rules, in precedence order.
const (
	fatigueForceRecovery  = 0.75
	underperformRateLimit = 0.35
	fatigueDowngrade      = 0.55
	upgradeStreakMin      = 5
	upgradeFatigueMax     = 0.4
	upgradeConsistencyMin = 0.6
	relaxConsistencyMax   = 0.35
)

// SelectFramework applies the deterministic personalization rules on top
// of a goal-sampled base framework. Later rules only fire when earlier
// ones left the framework unchanged. A nil insights pointer passes the
// base through untouched.
func SelectFramework(base goals.Framework, ins *Insights) goals.Framework {
	if ins == nil {
		return base
	}

	underperformRate := 0.0
	if n := len(ins.ExercisePerformance); n > 0 {
		flagged := 0
		for _, perf := range ins.ExercisePerformance {
			if perf.Underperformed {
				flagged++
			}
		}
		underperformRate = float64(flagged) / float64(n)
	}

	framework := base

	// High fatigue or widespread underperformance forces the most
	// recovery-friendly structure.
	if ins.FatigueTrend > fatigueForceRecovery || underperformRate > underperformRateLimit {
		framework = goals.FrameworkCircuit
	} else if ins.FatigueTrend > fatigueDowngrade && base == goals.FrameworkTabata {
		framework = goals.FrameworkEMOM
	}

	// A consistent, fresh user earns an intensity upgrade.
	if framework == base &&
		ins.StreakLength >= upgradeStreakMin &&
		ins.FatigueTrend < upgradeFatigueMax &&
		ins.TimeOfDayAdherence.Consistency > upgradeConsistencyMin {
		if base == goals.FrameworkEMOM {
			framework = goals.FrameworkTabata
		}
	}

	// Erratic scheduling does not mix with rigid intervals.
	if ins.TimeOfDayAdherence.Consistency < relaxConsistencyMax && framework == goals.FrameworkTabata {
		framework = goals.FrameworkAMRAP
	}

	return framework
}
