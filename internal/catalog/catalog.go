// Package catalog holds the static exercise reference data used by the
// workout generator. The catalog is built once at process start and
// shared read-only across requests.
package catalog

import (
	"fmt"

	"github.com/claude/reppulse/internal/equipment"
)

// Tier is a difficulty classification applied to both exercises and
// users (via skill score banding).
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// TierForSkillScore bands a 0-100 skill score into a difficulty tier.
func TierForSkillScore(score int) Tier {
	switch {
	case score <= 35:
		return TierBeginner
	case score <= 70:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// Targets holds the per-tier target value for an exercise: reps, or
// seconds when the exercise is a hold/timed effort.
type Targets struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

// For returns the target for a tier.
func (t Targets) For(tier Tier) int {
	switch tier {
	case TierBeginner:
		return t.Beginner
	case TierIntermediate:
		return t.Intermediate
	default:
		return t.Advanced
	}
}

// Exercise is one immutable catalog entry. Name is the unique key;
// sessions store it by value so later catalog edits never rewrite
// history. An exercise is eligible only when all required equipment is
// available.
type Exercise struct {
	Name        string         `json:"name"`
	MuscleGroup string         `json:"muscle_group"`
	Difficulty  Tier           `json:"difficulty"`
	Equipment   []equipment.ID `json:"equipment"`
	Targets     Targets        `json:"targets"`
	Hold        bool           `json:"is_hold"`
}

// IntegrityError reports a catalog that cannot guarantee non-empty
// eligibility for bodyweight-only users. Generation fails loudly on it
// rather than emitting a degenerate workout.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "catalog integrity: " + e.Reason
}

// Catalog is an immutable set of exercises with name lookup.
type Catalog struct {
	exercises []Exercise
	byName    map[string]Exercise
}

// New builds a catalog and verifies the bodyweight-fallback invariant:
// for every muscle group covered by bodyweight-only work there must be a
// beginner-tier entry, so that a bodyweight-only beginner always has an
// eligible pool.
func New(exercises []Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: exercises,
		byName:    make(map[string]Exercise, len(exercises)),
	}
	for _, ex := range exercises {
		if _, dup := c.byName[ex.Name]; dup {
			return nil, fmt.Errorf("duplicate exercise %q", ex.Name)
		}
		c.byName[ex.Name] = ex
	}
	if err := c.verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) verify() error {
	bodyweightBeginner := 0
	groups := make(map[string]bool)
	for _, ex := range c.exercises {
		if len(ex.Equipment) == 1 && ex.Equipment[0] == equipment.Bodyweight {
			groups[ex.MuscleGroup] = true
			if ex.Difficulty == equipmentSafeTier {
				bodyweightBeginner++
			}
		}
	}
	if bodyweightBeginner == 0 {
		return &IntegrityError{Reason: "no beginner bodyweight-only exercises"}
	}
	for _, g := range fallbackGroups {
		if !groups[g] {
			return &IntegrityError{Reason: fmt.Sprintf("muscle group %q has no bodyweight-only entry", g)}
		}
	}
	return nil
}

const equipmentSafeTier = TierBeginner

// fallbackGroups are the muscle groups every catalog must cover with
// bodyweight-only work.
var fallbackGroups = []string{"full-body", "legs", "chest", "core", "cardio"}

// Exercises returns the catalog entries in table order. Callers must not
// mutate the returned slice.
func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

// Lookup returns the exercise with the given name.
func (c *Catalog) Lookup(name string) (Exercise, bool) {
	ex, ok := c.byName[name]
	return ex, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.exercises) }

// Default builds the built-in exercise catalog.
func Default() (*Catalog, error) {
	return New(defaultExercises)
}
