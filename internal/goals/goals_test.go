package goals

import (
	"math"
	"testing"

	"github.com/claude/reppulse/internal/random"
)

// TestBuildWeightsPrimaryOnly verifies that a lone primary goal carries
// the full weight.
func TestBuildWeightsPrimaryOnly(t *testing.T) {
	w := BuildWeights("fat_loss", nil)
	if len(w) != 1 {
		t.Fatalf("got %d entries, want 1", len(w))
	}
	if w["fat_loss"] != 1.0 {
		t.Errorf("fat_loss weight = %v, want 1.0", w["fat_loss"])
	}
}

// TestBuildWeightsSecondarySplit verifies the 0.6 primary / 0.4 split
// rule and that the weights sum to 1.
func TestBuildWeightsSecondarySplit(t *testing.T) {
	w := BuildWeights("fat_loss", []string{"muscle_gain", "strength_power"})
	if w["fat_loss"] != 0.6 {
		t.Errorf("primary weight = %v, want 0.6", w["fat_loss"])
	}
	if w["muscle_gain"] != 0.2 || w["strength_power"] != 0.2 {
		t.Errorf("secondary weights = %v/%v, want 0.2 each", w["muscle_gain"], w["strength_power"])
	}
	var sum float64
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

// TestPickFrameworkWeightedDeterministic verifies that the same seed
// replays the same draw.
func TestPickFrameworkWeightedDeterministic(t *testing.T) {
	w := BuildWeights("fat_loss", []string{"muscle_gain"})
	first := PickFrameworkWeighted(w, random.Seeded(7))
	second := PickFrameworkWeighted(w, random.Seeded(7))
	if first != second {
		t.Errorf("same seed gave %q then %q", first, second)
	}
}

// TestPickFrameworkWeightedValid verifies that sampling only ever
// returns one of the four frameworks, across many seeds.
func TestPickFrameworkWeightedValid(t *testing.T) {
	valid := map[Framework]bool{
		FrameworkTabata: true, FrameworkEMOM: true, FrameworkAMRAP: true, FrameworkCircuit: true,
	}
	w := BuildWeights("strength_power", []string{"fat_loss"})
	for seed := uint64(1); seed <= 200; seed++ {
		f := PickFrameworkWeighted(w, random.Seeded(seed))
		if !valid[f] {
			t.Fatalf("seed %d: invalid framework %q", seed, f)
		}
	}
}

// TestPickFrameworkWeightedUnknownGoals verifies the EMOM fallback when
// no weighted goal has a config entry. Legacy taxonomies can reference
// ids the shipped table does not carry.
func TestPickFrameworkWeightedUnknownGoals(t *testing.T) {
	w := Weights{"cardio_endurance": 1.0}
	if f := PickFrameworkWeighted(w, random.Seeded(1)); f != FrameworkEMOM {
		t.Errorf("got %q, want emom fallback", f)
	}
}

// TestCombinedRestMultiplier verifies weight-blended rest multipliers
// and the 1.0 default.
func TestCombinedRestMultiplier(t *testing.T) {
	if got := CombinedRestMultiplier(Weights{"fat_loss": 1.0}); math.Abs(got-0.85) > 1e-9 {
		t.Errorf("fat_loss multiplier = %v, want 0.85", got)
	}
	if got := CombinedRestMultiplier(Weights{"unknown_goal": 1.0}); got != 1.0 {
		t.Errorf("unknown goal multiplier = %v, want 1.0", got)
	}
}

// TestCombinedExerciseBias verifies that a 50/50 weight split blends the
// bias vectors evenly.
func TestCombinedExerciseBias(t *testing.T) {
	bias := CombinedExerciseBias(Weights{"fat_loss": 0.5, "muscle_gain": 0.5})
	// fat_loss cardio 0.8, muscle_gain cardio 0.2
	if math.Abs(bias.Cardio-0.5) > 1e-9 {
		t.Errorf("cardio bias = %v, want 0.5", bias.Cardio)
	}
	// fat_loss compound 0.5, muscle_gain compound 0.9
	if math.Abs(bias.CompoundLifts-0.7) > 1e-9 {
		t.Errorf("compound bias = %v, want 0.7", bias.CompoundLifts)
	}
}

// TestMigrateLegacyFocus verifies the legacy focus label mapping.
func TestMigrateLegacyFocus(t *testing.T) {
	tests := []struct {
		focus string
		want  string
	}{
		{"cardio", "cardio_endurance"},
		{"strength", "strength_power"},
		{"metcon", "metabolic_conditioning"},
		{"yoga", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MigrateLegacyFocus(tt.focus); got != tt.want {
			t.Errorf("MigrateLegacyFocus(%q) = %q, want %q", tt.focus, got, tt.want)
		}
	}
}

// TestLookup verifies config lookup hits and misses.
func TestLookup(t *testing.T) {
	cfg, ok := Lookup("muscle_gain")
	if !ok {
		t.Fatal("muscle_gain not found")
	}
	if cfg.Label != "Muscle Gain" {
		t.Errorf("label = %q, want %q", cfg.Label, "Muscle Gain")
	}
	if _, ok := Lookup("nonexistent"); ok {
		t.Error("expected miss for nonexistent goal")
	}
}
