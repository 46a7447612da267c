// Package models defines the persisted records shared by the engine,
// storage, and transport layers. Optional fields are pointers so that
// null and absent survive a JSON round trip.
package models

import (
	"time"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/google/uuid"
)

// Profile is a user's training profile. SkillScore is mutated only by
// the post-session skill update and stays in [0,100].
type Profile struct {
	UserID         int            `json:"user_id"`
	FitnessLevel   string         `json:"fitness_level"`
	Equipment      []equipment.ID `json:"equipment"`
	SkillScore     int            `json:"skill_score"`
	PrimaryGoal    string         `json:"primary_goal"`
	SecondaryGoals []string       `json:"secondary_goals"`
	GoalWeights    goals.Weights  `json:"goal_weights"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// WorkoutSession is one generated workout and its outcome. Sessions are
// append-only: once created the generated fields never change; actuals,
// the effort rating, and the completed flag are filled in on completion.
type WorkoutSession struct {
	ID                uuid.UUID       `json:"id"`
	UserID            int             `json:"user_id"`
	CreatedAt         time.Time       `json:"created_at"`
	Framework         goals.Framework `json:"framework"`
	DifficultyTag     catalog.Tier    `json:"difficulty_tag"`
	DurationMinutes   int             `json:"duration_minutes"`
	FocusLabel        string          `json:"focus_label"`
	PerceivedExertion *int            `json:"perceived_exertion,omitempty"`
	Completed         bool            `json:"completed"`
	Rounds            []WorkoutRound  `json:"rounds"`
}

// WorkoutRound is one interval slot of a session. Exercise fields are
// stored by value at generation time; catalog edits never rewrite
// history. TargetReps is seconds when IsHold is set.
type WorkoutRound struct {
	SessionID     uuid.UUID    `json:"session_id"`
	MinuteIndex   int          `json:"minute_index"`
	ExerciseName  string       `json:"exercise_name"`
	MuscleGroup   string       `json:"muscle_group"`
	Difficulty    catalog.Tier `json:"difficulty"`
	TargetReps    int          `json:"target_reps"`
	ActualReps    *int         `json:"actual_reps,omitempty"`
	ActualSeconds *int         `json:"actual_seconds,omitempty"`
	Skipped       bool         `json:"skipped"`
	IsHold        bool         `json:"is_hold"`
	TargetLoad    *float64     `json:"target_load,omitempty"`
	ActualLoad    *float64     `json:"actual_load,omitempty"`
}

// EffectiveTarget returns the round's target with the denominator
// floored at 1 so ratios stay defined on malformed rows.
func (r WorkoutRound) EffectiveTarget() int {
	if r.TargetReps < 1 {
		return 1
	}
	return r.TargetReps
}

// ActualValue resolves the logged output for a round. Holds prefer
// seconds and fall back to reps; rep work prefers reps and falls back to
// seconds; a round with nothing logged counts as having met its target.
func (r WorkoutRound) ActualValue() int {
	target := r.EffectiveTarget()
	if r.IsHold {
		if r.ActualSeconds != nil {
			return *r.ActualSeconds
		}
		if r.ActualReps != nil {
			return *r.ActualReps
		}
		return target
	}
	if r.ActualReps != nil {
		return *r.ActualReps
	}
	if r.ActualSeconds != nil {
		return *r.ActualSeconds
	}
	return target
}

// ExerciseProgression is the per-user, per-exercise progression state.
// One row per exercise, upserted after every session containing it.
type ExerciseProgression struct {
	UserID                int       `json:"user_id"`
	ExerciseName          string    `json:"exercise_name"`
	NextTargetReps        int       `json:"next_target_reps"`
	NextTargetLoad        *float64  `json:"next_target_load,omitempty"`
	OverperformanceStreak int       `json:"overperformance_streak"`
	WeeklyIncrements      int       `json:"weekly_increments"`
	WeekOfYear            int       `json:"week_of_year"`
	LastSessionAt         time.Time `json:"last_session_at"`
}
