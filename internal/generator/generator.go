// Package generator procedurally assembles timed interval workouts from
// the exercise catalog, a user's skill score, and their equipment. All
// randomness flows through an injected random.Source so tests replay
// deterministically.
package generator

import (
	"math"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/models"
	"github.com/claude/reppulse/internal/random"
)

// intermediateKeepProbability is the chance a beginner-tier workout
// keeps any given intermediate exercise in its eligible pool. The filter
// is re-rolled on every call; repeated generations with identical inputs
// see different pools on purpose.
const intermediateKeepProbability = 0.3

// Workout is a generated interval workout, not yet persisted.
type Workout struct {
	DurationMinutes int                   `json:"duration_minutes"`
	DifficultyTag   catalog.Tier          `json:"difficulty_tag"`
	FocusLabel      string                `json:"focus_label"`
	Framework       goals.Framework       `json:"framework"`
	Rounds          []models.WorkoutRound `json:"rounds"`
}

// Generate builds a workout: skill score picks the tier, the tier and
// equipment richness pick a duration, and each minute gets an eligible
// exercise with no immediate repeats. The focus label is carried
// verbatim from the caller. It fails only when the catalog yields no
// eligible exercise at all, which a verified catalog plus a resolved
// (bodyweight-containing) equipment set rules out.
func Generate(cat *catalog.Catalog, skillScore int, equip []equipment.ID, goalFocus string, framework goals.Framework, rng random.Source) (*Workout, error) {
	richness := equipment.ClassifyRichness(equip)
	tier := catalog.TierForSkillScore(skillScore)
	duration := drawDuration(tier, richness, rng)

	eligible := eligibleExercises(cat, tier, equip, rng)
	if len(eligible) == 0 {
		return nil, &catalog.IntegrityError{Reason: "no eligible exercises for equipment set"}
	}

	rounds := make([]models.WorkoutRound, 0, duration)
	lastName := ""
	for minute := 1; minute <= duration; minute++ {
		ex := pickExercise(eligible, lastName, rng)
		rounds = append(rounds, models.WorkoutRound{
			MinuteIndex:  minute,
			ExerciseName: ex.Name,
			MuscleGroup:  ex.MuscleGroup,
			Difficulty:   ex.Difficulty,
			TargetReps:   ex.Targets.For(tier),
			IsHold:       ex.Hold,
		})
		lastName = ex.Name
	}

	return &Workout{
		DurationMinutes: duration,
		DifficultyTag:   tier,
		FocusLabel:      goalFocus,
		Framework:       framework,
		Rounds:          rounds,
	}, nil
}

// drawDuration picks minutes from the tier's inclusive range, with a
// bonus for full equipment at intermediate and advanced tiers.
func drawDuration(tier catalog.Tier, richness equipment.Richness, rng random.Source) int {
	switch tier {
	case catalog.TierBeginner:
		return 8 + rng.IntN(5) // 8-12
	case catalog.TierIntermediate:
		d := 12 + rng.IntN(9) // 12-20
		if richness == equipment.RichnessFull {
			d += 2
		}
		return d
	default:
		d := 20 + rng.IntN(11) // 20-30
		if richness == equipment.RichnessFull {
			d += 3
		}
		return d
	}
}

// eligibleExercises filters the catalog by equipment subset and tier
// policy. Beginner tiers drop advanced work outright and keep each
// intermediate exercise with a fresh 0.3 roll.
func eligibleExercises(cat *catalog.Catalog, tier catalog.Tier, equip []equipment.ID, rng random.Source) []catalog.Exercise {
	var eligible []catalog.Exercise
	for _, ex := range cat.Exercises() {
		if !equipment.Subset(ex.Equipment, equip) {
			continue
		}
		if tier == catalog.TierBeginner {
			if ex.Difficulty == catalog.TierAdvanced {
				continue
			}
			if ex.Difficulty == catalog.TierIntermediate && rng.Float64() > intermediateKeepProbability {
				continue
			}
		}
		eligible = append(eligible, ex)
	}
	return eligible
}

// pickExercise draws uniformly among eligible exercises excluding the
// previous minute's pick; when the exclusion empties the pool (single
// eligible exercise) it falls back to the full pool.
func pickExercise(eligible []catalog.Exercise, lastName string, rng random.Source) catalog.Exercise {
	candidates := eligible
	if lastName != "" {
		filtered := make([]catalog.Exercise, 0, len(eligible))
		for _, ex := range eligible {
			if ex.Name != lastName {
				filtered = append(filtered, ex)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	return candidates[rng.IntN(len(candidates))]
}

// UpdateSkillScore adjusts a skill score from the user's post-session
// effort rating (1-5): too easy pushes the score up, too hard pulls it
// down. The result is clamped to [0,100].
func UpdateSkillScore(current, rating int) int {
	next := current
	switch {
	case rating <= 2:
		next += 3
	case rating == 3:
		next += 1
	default:
		next -= 3
	}
	return int(math.Min(100, math.Max(0, float64(next))))
}
