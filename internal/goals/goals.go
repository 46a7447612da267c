// Package goals defines the training goal configuration table and the
// goal-weighted framework sampling used by workout generation. The goal
// id set is a data table, not a closed enum: weights may reference ids
// with no config entry (legacy taxonomies) and those simply contribute
// nothing.
package goals

import (
	"github.com/claude/reppulse/internal/random"
)

// Framework is a workout structure.
type Framework string

const (
	FrameworkTabata  Framework = "tabata"
	FrameworkEMOM    Framework = "emom"
	FrameworkAMRAP   Framework = "amrap"
	FrameworkCircuit Framework = "circuit"
)

// frameworkOrder fixes the iteration order for weighted sampling so a
// seeded random source replays identically.
var frameworkOrder = []Framework{FrameworkTabata, FrameworkEMOM, FrameworkAMRAP, FrameworkCircuit}

// FrameworkBias holds per-framework sampling weights for a goal.
type FrameworkBias struct {
	Tabata  float64 `json:"tabata"`
	EMOM    float64 `json:"emom"`
	AMRAP   float64 `json:"amrap"`
	Circuit float64 `json:"circuit"`
}

func (b FrameworkBias) weight(f Framework) float64 {
	switch f {
	case FrameworkTabata:
		return b.Tabata
	case FrameworkEMOM:
		return b.EMOM
	case FrameworkAMRAP:
		return b.AMRAP
	default:
		return b.Circuit
	}
}

// ExerciseBias holds 0-1 selection preferences exposed to downstream
// consumers of the generator.
type ExerciseBias struct {
	CompoundLifts float64 `json:"compound_lifts"`
	Cardio        float64 `json:"cardio"`
	Plyometric    float64 `json:"plyometric"`
	Mobility      float64 `json:"mobility"`
}

// Config is the full metadata for one training goal.
type Config struct {
	ID                string        `json:"id"`
	Label             string        `json:"label"`
	Subtitle          string        `json:"subtitle"`
	Tags              []string      `json:"tags"`
	FrameworkBias     FrameworkBias `json:"framework_bias"`
	PreferredDuration [2]int        `json:"preferred_duration_minutes"`
	RestMultiplier    float64       `json:"rest_multiplier"`
	ExerciseBias      ExerciseBias  `json:"exercise_bias"`
}

// Configs is the shipped goal table.
var Configs = []Config{
	{
		ID:                "fat_loss",
		Label:             "Fat Loss",
		Subtitle:          "Burn calories and lean out",
		Tags:              []string{"fat loss", "calorie burn", "intervals", "conditioning", "metabolic"},
		FrameworkBias:     FrameworkBias{Tabata: 0.35, EMOM: 0.25, AMRAP: 0.15, Circuit: 0.25},
		PreferredDuration: [2]int{12, 25},
		RestMultiplier:    0.85,
		ExerciseBias:      ExerciseBias{CompoundLifts: 0.5, Cardio: 0.8, Plyometric: 0.6, Mobility: 0.2},
	},
	{
		ID:                "muscle_gain",
		Label:             "Muscle Gain",
		Subtitle:          "Hypertrophy-focused strength work",
		Tags:              []string{"hypertrophy", "time under tension", "moderate rest", "muscle building"},
		FrameworkBias:     FrameworkBias{Tabata: 0.1, EMOM: 0.4, AMRAP: 0.15, Circuit: 0.35},
		PreferredDuration: [2]int{20, 30},
		RestMultiplier:    1.2,
		ExerciseBias:      ExerciseBias{CompoundLifts: 0.9, Cardio: 0.2, Plyometric: 0.3, Mobility: 0.2},
	},
	{
		ID:                "strength_power",
		Label:             "Strength & Power",
		Subtitle:          "Build strength, explosiveness, and muscle",
		Tags:              []string{"strength", "power", "compound lifts", "longer rest", "explosive"},
		FrameworkBias:     FrameworkBias{Tabata: 0.1, EMOM: 0.4, AMRAP: 0.2, Circuit: 0.3},
		PreferredDuration: [2]int{10, 25},
		RestMultiplier:    1.3,
		ExerciseBias:      ExerciseBias{CompoundLifts: 0.9, Cardio: 0.2, Plyometric: 0.6, Mobility: 0.2},
	},
}

// Lookup returns the config for a goal id.
func Lookup(id string) (Config, bool) {
	for _, cfg := range Configs {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return Config{}, false
}

// Weights maps goal id to a non-negative weight. Weights built by
// BuildWeights sum to 1.0.
type Weights map[string]float64

// BuildWeights derives the goal weight map: the primary goal gets 0.6
// and secondary goals split the remaining 0.4 evenly. With no
// secondaries the primary carries the full weight.
func BuildWeights(primary string, secondaries []string) Weights {
	w := make(Weights, 1+len(secondaries))
	if len(secondaries) == 0 {
		w[primary] = 1.0
		return w
	}
	w[primary] = 0.6
	share := 0.4 / float64(len(secondaries))
	for _, id := range secondaries {
		w[id] += share
	}
	return w
}

// PickFrameworkWeighted draws a framework from the combination of each
// weighted goal's bias vector. The combined vector is renormalized
// before sampling since unknown goal ids and floating point drift can
// leave it short of 1. With no usable weights it falls back to EMOM.
func PickFrameworkWeighted(weights Weights, rng random.Source) Framework {
	combined := make(map[Framework]float64, len(frameworkOrder))
	var total float64
	for id, weight := range weights {
		cfg, ok := Lookup(id)
		if !ok || weight <= 0 {
			continue
		}
		for _, f := range frameworkOrder {
			v := cfg.FrameworkBias.weight(f) * weight
			combined[f] += v
			total += v
		}
	}
	if total <= 0 {
		return FrameworkEMOM
	}

	roll := rng.Float64() * total
	var cumulative float64
	for _, f := range frameworkOrder {
		cumulative += combined[f]
		if roll <= cumulative {
			return f
		}
	}
	return FrameworkEMOM
}

// CombinedExerciseBias blends each goal's exercise bias by its weight.
func CombinedExerciseBias(weights Weights) ExerciseBias {
	var bias ExerciseBias
	for id, weight := range weights {
		cfg, ok := Lookup(id)
		if !ok || weight <= 0 {
			continue
		}
		bias.CompoundLifts += cfg.ExerciseBias.CompoundLifts * weight
		bias.Cardio += cfg.ExerciseBias.Cardio * weight
		bias.Plyometric += cfg.ExerciseBias.Plyometric * weight
		bias.Mobility += cfg.ExerciseBias.Mobility * weight
	}
	return bias
}

// CombinedRestMultiplier blends each goal's rest multiplier by its
// weight, defaulting to 1.0 when no configured goal carries weight.
func CombinedRestMultiplier(weights Weights) float64 {
	var m float64
	for id, weight := range weights {
		cfg, ok := Lookup(id)
		if !ok || weight <= 0 {
			continue
		}
		m += cfg.RestMultiplier * weight
	}
	if m == 0 {
		return 1.0
	}
	return m
}

// MigrateLegacyFocus maps pre-taxonomy goal focus labels to goal ids.
// Unknown labels return "" and leave the profile's goal unset.
func MigrateLegacyFocus(focus string) string {
	switch focus {
	case "cardio":
		return "cardio_endurance"
	case "strength":
		return "strength_power"
	case "metcon":
		return "metabolic_conditioning"
	default:
		return ""
	}
}
