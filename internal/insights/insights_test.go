package insights

import (
	"math"
	"testing"
	"time"

	"github.com/claude/reppulse/internal/models"
)

func intPtr(v int) *int { return &v }

func completedSession(created time.Time, rounds ...models.WorkoutRound) models.WorkoutSession {
	return models.WorkoutSession{
		CreatedAt: created,
		Completed: true,
		Rounds:    rounds,
	}
}

func hitRound(target, actual int) models.WorkoutRound {
	return models.WorkoutRound{TargetReps: target, ActualReps: intPtr(actual)}
}

func skippedRound(target int) models.WorkoutRound {
	return models.WorkoutRound{TargetReps: target, Skipped: true}
}

// TestHitRatioCapped verifies that a massive overshoot contributes at
// most 1.5 to the hit rate.
func TestHitRatioCapped(t *testing.T) {
	s := completedSession(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), hitRound(10, 100))
	ins := Compute([]models.WorkoutSession{s}, DefaultWindowSize)
	if ins.AverageHitRate != 1.5 {
		t.Errorf("average hit rate = %v, want 1.5", ins.AverageHitRate)
	}
}

// TestSkipRate verifies the skip rate over all rounds in the window.
func TestSkipRate(t *testing.T) {
	s := completedSession(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		hitRound(10, 10), skippedRound(10), hitRound(10, 10), skippedRound(10))
	ins := Compute([]models.WorkoutSession{s}, DefaultWindowSize)
	if ins.SkipRate != 0.5 {
		t.Errorf("skip rate = %v, want 0.5", ins.SkipRate)
	}
}

// TestFatigueTrendRecencyWeighting verifies that a fatigued session
// weighs more when it is the most recent one. Sessions are newest first.
func TestFatigueTrendRecencyWeighting(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fatigued := completedSession(day, skippedRound(10), skippedRound(10), skippedRound(10))
	clean := completedSession(day.AddDate(0, 0, -1), hitRound(10, 10), hitRound(10, 10))

	fatiguedFirst := Compute([]models.WorkoutSession{fatigued, clean}, DefaultWindowSize)
	cleanFirst := Compute([]models.WorkoutSession{clean, fatigued}, DefaultWindowSize)

	if fatiguedFirst.FatigueTrend <= cleanFirst.FatigueTrend {
		t.Errorf("fatigued-first trend %v should exceed clean-first trend %v",
			fatiguedFirst.FatigueTrend, cleanFirst.FatigueTrend)
	}
}

// TestMusclePreferenceClamped verifies the [0.8, 1.3] clamp on muscle
// preference multipliers.
func TestMusclePreferenceClamped(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	weak := models.WorkoutRound{ExerciseName: "Push-ups", MuscleGroup: "chest", TargetReps: 10, ActualReps: intPtr(1)}
	strong := models.WorkoutRound{ExerciseName: "Air Squats", MuscleGroup: "legs", TargetReps: 10, ActualReps: intPtr(50)}
	ins := Compute([]models.WorkoutSession{completedSession(day, weak, strong)}, DefaultWindowSize)

	if got := ins.MusclePreference["chest"]; got != 0.8 {
		t.Errorf("chest preference = %v, want clamped 0.8", got)
	}
	if got := ins.MusclePreference["legs"]; got != 1.3 {
		t.Errorf("legs preference = %v, want clamped 1.3", got)
	}
}

// TestExerciseUnderperformed verifies the underperformance flag on a low
// mean completion ratio.
func TestExerciseUnderperformed(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	low := models.WorkoutRound{ExerciseName: "Burpees", MuscleGroup: "full-body", TargetReps: 10, ActualReps: intPtr(7)}
	ok := models.WorkoutRound{ExerciseName: "Air Squats", MuscleGroup: "legs", TargetReps: 10, ActualReps: intPtr(10)}
	ins := Compute([]models.WorkoutSession{completedSession(day, low, ok)}, DefaultWindowSize)

	if perf := ins.ExercisePerformance["Burpees"]; !perf.Underperformed {
		t.Errorf("Burpees perf = %+v, want underperformed", perf)
	}
	if perf := ins.ExercisePerformance["Air Squats"]; perf.Underperformed {
		t.Errorf("Air Squats perf = %+v, want not underperformed", perf)
	}
}

// TestTimeOfDayAdherence verifies preferred window, consistency, and the
// average hour rounded to one decimal.
func TestTimeOfDayAdherence(t *testing.T) {
	mk := func(hour int, daysAgo int) models.WorkoutSession {
		return completedSession(time.Date(2026, 3, 10-daysAgo, hour, 0, 0, 0, time.UTC), hitRound(10, 10))
	}
	sessions := []models.WorkoutSession{mk(7, 0), mk(8, 1), mk(9, 2), mk(18, 3)}
	ins := Compute(sessions, DefaultWindowSize)

	if ins.TimeOfDayAdherence.PreferredWindow != WindowMorning {
		t.Errorf("preferred window = %q, want morning", ins.TimeOfDayAdherence.PreferredWindow)
	}
	if ins.TimeOfDayAdherence.Consistency != 0.75 {
		t.Errorf("consistency = %v, want 0.75", ins.TimeOfDayAdherence.Consistency)
	}
	if ins.TimeOfDayAdherence.AverageHour == nil || *ins.TimeOfDayAdherence.AverageHour != 8.0 {
		t.Errorf("average hour = %v, want 8.0", ins.TimeOfDayAdherence.AverageHour)
	}
}

// TestTimeOfDayUnavailable verifies the unavailable window on an empty
// history.
func TestTimeOfDayUnavailable(t *testing.T) {
	ins := Compute(nil, DefaultWindowSize)
	if ins.TimeOfDayAdherence.PreferredWindow != WindowUnavailable {
		t.Errorf("preferred window = %q, want unavailable", ins.TimeOfDayAdherence.PreferredWindow)
	}
}

// TestStreakLength verifies the calendar-day streak: three consecutive
// days followed by a gap counts 3, and same-day sessions deduplicate.
func TestStreakLength(t *testing.T) {
	day := func(daysAgo int, hour int) time.Time {
		return time.Date(2026, 3, 20, hour, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	}
	sessions := []models.WorkoutSession{
		completedSession(day(0, 18), hitRound(10, 10)),
		completedSession(day(0, 7), hitRound(10, 10)), // same day, deduped
		completedSession(day(1, 9), hitRound(10, 10)),
		completedSession(day(2, 9), hitRound(10, 10)),
		completedSession(day(4, 9), hitRound(10, 10)), // gap breaks here
		completedSession(day(5, 9), hitRound(10, 10)),
	}
	ins := Compute(sessions, DefaultWindowSize)
	if ins.StreakLength != 3 {
		t.Errorf("streak = %d, want 3", ins.StreakLength)
	}
}

// TestStreakBrokenByIncomplete verifies that an incomplete session on
// the most recent day ends the streak immediately.
func TestStreakBrokenByIncomplete(t *testing.T) {
	day := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		{CreatedAt: day, Completed: false, Rounds: []models.WorkoutRound{hitRound(10, 10)}},
		completedSession(day.AddDate(0, 0, -1), hitRound(10, 10)),
	}
	ins := Compute(sessions, DefaultWindowSize)
	if ins.StreakLength != 0 {
		t.Errorf("streak = %d, want 0", ins.StreakLength)
	}
}

// TestAverageRating verifies the mean of reported effort ratings.
func TestAverageRating(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := completedSession(day, hitRound(10, 10))
	a.PerceivedExertion = intPtr(4)
	b := completedSession(day.AddDate(0, 0, -1), hitRound(10, 10))
	b.PerceivedExertion = intPtr(2)

	ins := Compute([]models.WorkoutSession{a, b}, DefaultWindowSize)
	if ins.AverageRating == nil || math.Abs(*ins.AverageRating-3.0) > 1e-9 {
		t.Errorf("average rating = %v, want 3.0", ins.AverageRating)
	}
}

// TestWindowLimitsSignals verifies that sessions beyond the window do
// not affect windowed signals while the streak still sees them.
func TestWindowLimitsSignals(t *testing.T) {
	day := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	clean := completedSession(day, hitRound(10, 10))
	old := completedSession(day.AddDate(0, 0, -1), skippedRound(10), skippedRound(10))

	ins := Compute([]models.WorkoutSession{clean, old}, 1)
	if ins.SkipRate != 0 {
		t.Errorf("skip rate = %v, want 0 (old session outside window)", ins.SkipRate)
	}
	if ins.StreakLength != 2 {
		t.Errorf("streak = %d, want 2 (streak scans full history)", ins.StreakLength)
	}
}

// TestSummarize verifies the per-session digest.
func TestSummarize(t *testing.T) {
	rounds := []models.WorkoutRound{hitRound(10, 10), skippedRound(10)}
	s := Summarize(rounds, intPtr(4))
	if s.AverageHitRate != 1.0 {
		t.Errorf("hit rate = %v, want 1.0", s.AverageHitRate)
	}
	if s.SkipRate != 0.5 {
		t.Errorf("skip rate = %v, want 0.5", s.SkipRate)
	}
	if s.AverageRating == nil || *s.AverageRating != 4 {
		t.Errorf("rating = %v, want 4", s.AverageRating)
	}
}
