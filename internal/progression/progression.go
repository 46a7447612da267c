// Package progression recomputes per-exercise targets after a session
// using an overperformance-streak rule: three consecutive overperforming
// sessions earn a target bump, rate-limited to two bumps per ISO week.
package progression

import (
	"math"
	"time"

	"github.com/claude/reppulse/internal/models"
)

const (
	overperformRepRatio  = 1.05
	overperformLoadRatio = 1.02
	bumpStreak           = 3
	maxWeeklyIncrements  = 2
	loadIncrementKg      = 2.5
)

// ISOWeek returns the ISO-8601 week number for t (Monday-start weeks,
// the week containing the year's first Thursday is week 1).
func ISOWeek(t time.Time) int {
	_, week := t.UTC().ISOWeek()
	return week
}

// aggregate is the per-exercise digest of one session's rounds:
// last-seen target and actual, last-seen loads, and whether any round
// was skipped (which suppresses advancement for the session).
type aggregate struct {
	target     int
	actual     int
	targetLoad *float64
	actualLoad *float64
	skipped    bool
}

// BuildUpdates aggregates a completed session's rounds by exercise and
// produces one progression upsert per exercise touched. Exercises absent
// from the session are left alone. The rows carry now's ISO week; the
// weekly increment counter carries over only when the existing row is
// from the same week.
func BuildUpdates(rounds []models.WorkoutRound, existing []models.ExerciseProgression, now time.Time) []models.ExerciseProgression {
	week := ISOWeek(now)

	existingByName := make(map[string]models.ExerciseProgression, len(existing))
	for _, row := range existing {
		existingByName[row.ExerciseName] = row
	}

	aggregates := make(map[string]*aggregate)
	var order []string
	for _, round := range rounds {
		agg := aggregates[round.ExerciseName]
		if agg == nil {
			agg = &aggregate{
				target:     round.TargetReps,
				targetLoad: round.TargetLoad,
				actualLoad: round.ActualLoad,
			}
			aggregates[round.ExerciseName] = agg
			order = append(order, round.ExerciseName)
		}

		if round.Skipped {
			agg.skipped = true
			continue
		}

		agg.target = round.EffectiveTarget()
		agg.actual = round.ActualValue()
		if round.TargetLoad != nil {
			agg.targetLoad = round.TargetLoad
		}
		if round.ActualLoad != nil {
			agg.actualLoad = round.ActualLoad
		}
	}

	updates := make([]models.ExerciseProgression, 0, len(order))
	for _, name := range order {
		agg := aggregates[name]
		var existingRow *models.ExerciseProgression
		if row, ok := existingByName[name]; ok {
			existingRow = &row
		}
		next := advance(agg, existingRow, week)
		next.ExerciseName = name
		next.WeekOfYear = week
		next.LastSessionAt = now
		updates = append(updates, next)
	}
	return updates
}

// advance applies the streak and bump rules for one exercise.
func advance(agg *aggregate, existing *models.ExerciseProgression, week int) models.ExerciseProgression {
	baseTarget := agg.target
	if existing != nil {
		baseTarget = existing.NextTargetReps
	}
	if baseTarget < 1 {
		baseTarget = 1
	}

	baseLoad := agg.targetLoad
	if existing != nil && existing.NextTargetLoad != nil {
		baseLoad = existing.NextTargetLoad
	}

	denom := agg.target
	if denom < 1 {
		denom = 1
	}
	performanceRatio := float64(agg.actual) / float64(denom)

	loadRatio := 0.0
	if agg.actualLoad != nil && agg.targetLoad != nil && *agg.targetLoad != 0 {
		loadDenom := math.Max(*agg.targetLoad, 1)
		loadRatio = *agg.actualLoad / loadDenom
	}

	overperformed := !agg.skipped && (performanceRatio >= overperformRepRatio || loadRatio >= overperformLoadRatio)

	weeklyIncrements := 0
	if existing != nil && existing.WeekOfYear == week {
		weeklyIncrements = existing.WeeklyIncrements
	}

	streak := 0
	if overperformed {
		if existing != nil {
			streak = existing.OverperformanceStreak
		}
		streak++
	}

	nextTargetReps := baseTarget
	nextTargetLoad := baseLoad

	if streak >= bumpStreak && weeklyIncrements < maxWeeklyIncrements {
		nextTargetReps = max(baseTarget+1, int(math.Round(float64(baseTarget)*overperformRepRatio)))
		if agg.actualLoad != nil {
			baseline := 0.0
			if nextTargetLoad != nil {
				baseline = *nextTargetLoad
			} else if agg.targetLoad != nil {
				baseline = *agg.targetLoad
			}
			bumped := math.Max(*agg.actualLoad, baseline+loadIncrementKg)
			nextTargetLoad = &bumped
		}
		weeklyIncrements++
		// A fresh streak is required before the next bump.
		streak = 0
	}

	return models.ExerciseProgression{
		NextTargetReps:        nextTargetReps,
		NextTargetLoad:        nextTargetLoad,
		OverperformanceStreak: streak,
		WeeklyIncrements:      weeklyIncrements,
	}
}
