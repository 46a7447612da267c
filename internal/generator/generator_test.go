package generator

import (
	"errors"
	"testing"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/random"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

// TestGenerateAdvancedFullEquipment verifies the end-to-end shape for a
// high-skill user with heavy equipment: advanced tier, duration in the
// advanced range with the full-equipment bonus, and one round per
// minute with contiguous indices.
func TestGenerateAdvancedFullEquipment(t *testing.T) {
	cat := testCatalog(t)
	equip := []equipment.ID{equipment.Bodyweight, equipment.Barbell}

	w, err := Generate(cat, 80, equip, "Strength & Power", goals.FrameworkEMOM, random.Seeded(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.DifficultyTag != catalog.TierAdvanced {
		t.Errorf("difficulty = %q, want advanced", w.DifficultyTag)
	}
	if w.DurationMinutes < 23 || w.DurationMinutes > 33 {
		t.Errorf("duration = %d, want 23-33", w.DurationMinutes)
	}
	if len(w.Rounds) != w.DurationMinutes {
		t.Fatalf("rounds = %d, want %d", len(w.Rounds), w.DurationMinutes)
	}
	for i, round := range w.Rounds {
		if round.MinuteIndex != i+1 {
			t.Errorf("round %d has minute index %d", i, round.MinuteIndex)
		}
		if round.TargetReps < 1 {
			t.Errorf("round %d target = %d, want >= 1", i, round.TargetReps)
		}
	}
	if w.FocusLabel != "Strength & Power" {
		t.Errorf("focus = %q", w.FocusLabel)
	}
	if w.Framework != goals.FrameworkEMOM {
		t.Errorf("framework = %q", w.Framework)
	}
}

// TestGenerateDurationRanges verifies the per-tier duration ranges over
// many seeds.
func TestGenerateDurationRanges(t *testing.T) {
	cat := testCatalog(t)
	tests := []struct {
		name     string
		score    int
		equip    []equipment.ID
		min, max int
	}{
		{"beginner", 20, []equipment.ID{equipment.Bodyweight}, 8, 12},
		{"intermediate", 50, []equipment.ID{equipment.Bodyweight}, 12, 20},
		{"intermediate full", 50, []equipment.ID{equipment.Bodyweight, equipment.Rower}, 14, 22},
		{"advanced", 90, []equipment.ID{equipment.Bodyweight}, 20, 30},
	}
	for _, tt := range tests {
		for seed := uint64(1); seed <= 40; seed++ {
			w, err := Generate(cat, tt.score, tt.equip, "focus", goals.FrameworkAMRAP, random.Seeded(seed))
			if err != nil {
				t.Fatalf("%s seed %d: %v", tt.name, seed, err)
			}
			if w.DurationMinutes < tt.min || w.DurationMinutes > tt.max {
				t.Fatalf("%s seed %d: duration %d outside [%d,%d]", tt.name, seed, w.DurationMinutes, tt.min, tt.max)
			}
		}
	}
}

// TestGenerateNoAdjacentRepeats verifies that consecutive minutes never
// assign the same exercise when the pool allows variety.
func TestGenerateNoAdjacentRepeats(t *testing.T) {
	cat := testCatalog(t)
	equip := []equipment.ID{equipment.Bodyweight}
	for seed := uint64(1); seed <= 100; seed++ {
		w, err := Generate(cat, 50, equip, "focus", goals.FrameworkTabata, random.Seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for i := 1; i < len(w.Rounds); i++ {
			if w.Rounds[i].ExerciseName == w.Rounds[i-1].ExerciseName {
				t.Fatalf("seed %d: minutes %d and %d both assign %q",
					seed, i, i+1, w.Rounds[i].ExerciseName)
			}
		}
	}
}

// TestGenerateRespectsEquipment verifies every assigned exercise needs
// only equipment the user has.
func TestGenerateRespectsEquipment(t *testing.T) {
	cat := testCatalog(t)
	equip := []equipment.ID{equipment.Bodyweight, equipment.Dumbbells}
	for seed := uint64(1); seed <= 50; seed++ {
		w, err := Generate(cat, 60, equip, "focus", goals.FrameworkEMOM, random.Seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, round := range w.Rounds {
			ex, ok := cat.Lookup(round.ExerciseName)
			if !ok {
				t.Fatalf("seed %d: unknown exercise %q", seed, round.ExerciseName)
			}
			if !equipment.Subset(ex.Equipment, equip) {
				t.Fatalf("seed %d: %q requires %v, user has %v",
					seed, ex.Name, ex.Equipment, equip)
			}
		}
	}
}

// TestGenerateBeginnerNeverAdvanced verifies the beginner pool excludes
// advanced work no matter how much equipment is available.
func TestGenerateBeginnerNeverAdvanced(t *testing.T) {
	cat := testCatalog(t)
	equip := []equipment.ID{
		equipment.Bodyweight, equipment.Dumbbells, equipment.Kettlebell,
		equipment.Barbell, equipment.PullUpBar, equipment.Bench,
	}
	for seed := uint64(1); seed <= 50; seed++ {
		w, err := Generate(cat, 20, equip, "focus", goals.FrameworkCircuit, random.Seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, round := range w.Rounds {
			if round.Difficulty == catalog.TierAdvanced {
				t.Fatalf("seed %d: beginner workout assigned advanced %q", seed, round.ExerciseName)
			}
		}
	}
}

// TestGenerateEmptyPoolFailsLoudly verifies that an equipment set
// matching nothing in the catalog surfaces an integrity error instead of
// a degenerate workout.
func TestGenerateEmptyPoolFailsLoudly(t *testing.T) {
	cat := testCatalog(t)
	_, err := Generate(cat, 50, []equipment.ID{"hyperbolic_chamber"}, "focus", goals.FrameworkEMOM, random.Seeded(1))
	var integrity *catalog.IntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
}

// TestUpdateSkillScore verifies the rating adjustments and the [0,100]
// clamp.
func TestUpdateSkillScore(t *testing.T) {
	tests := []struct {
		current, rating, want int
	}{
		{50, 1, 53},
		{50, 2, 53},
		{50, 3, 51},
		{50, 4, 47},
		{50, 5, 47},
		{99, 1, 100},
		{100, 2, 100},
		{1, 5, 0},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := UpdateSkillScore(tt.current, tt.rating); got != tt.want {
			t.Errorf("UpdateSkillScore(%d, %d) = %d, want %d", tt.current, tt.rating, got, tt.want)
		}
	}
}
