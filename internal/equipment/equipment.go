// Package equipment defines the canonical equipment identifiers and the
// boundary-level normalization of raw user selections. Legacy labels from
// older profile records are mapped to canonical ids here; unknown tokens
// pass through untouched so they can never break generation — they simply
// match no exercise's requirements.
package equipment

// ID is a canonical equipment identifier.
type ID string

const (
	Bodyweight          ID = "bodyweight"
	Dumbbells           ID = "dumbbells"
	Kettlebell          ID = "kettlebell"
	Barbell             ID = "barbell"
	ResistanceBandsLoop ID = "resistance_bands_loop"
	ResistanceBandLong  ID = "resistance_band_long"
	PullUpBar           ID = "pull_up_bar"
	DipBars             ID = "dip_bars"
	Bench               ID = "bench"
	StepBox             ID = "step_box"
	MedicineBall        ID = "medicine_ball"
	SlamBall            ID = "slam_ball"
	TRX                 ID = "trx"
	JumpRope            ID = "jump_rope"
	Sliders             ID = "sliders"
	ExerciseBall        ID = "exercise_ball"
	Rower               ID = "rower"
	Bike                ID = "bike"
	Treadmill           ID = "treadmill"
	Elliptical          ID = "elliptical"
)

// Richness classifies how much an equipment set allows the generator to
// program: minimal is bodyweight only, full means heavy strength or
// cardio machines are available, everything else is moderate.
type Richness string

const (
	RichnessMinimal  Richness = "minimal"
	RichnessModerate Richness = "moderate"
	RichnessFull     Richness = "full"
)

// Option carries display metadata for an equipment choice, served to the
// onboarding surface.
type Option struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Options is the full equipment menu, in display order.
var Options = []Option{
	{ID: Bodyweight, Label: "Bodyweight Only", Description: "No equipment, just you and gravity."},
	{ID: Dumbbells, Label: "Dumbbells", Description: "Single or pair of dumbbells."},
	{ID: Kettlebell, Label: "Kettlebell", Description: "One or more kettlebells."},
	{ID: Barbell, Label: "Barbell", Description: "Barbell with plates or fixed-weight."},
	{ID: ResistanceBandsLoop, Label: "Loop Bands", Description: "Short loop bands for glutes and legs."},
	{ID: ResistanceBandLong, Label: "Long Bands", Description: "Long resistance bands with handles or anchors."},
	{ID: PullUpBar, Label: "Pull-Up Bar", Description: "Doorframe or fixed pull-up bar."},
	{ID: DipBars, Label: "Dip Bars", Description: "Parallel bars or sturdy supports for dips."},
	{ID: Bench, Label: "Bench", Description: "Flat or adjustable bench."},
	{ID: StepBox, Label: "Step / Box", Description: "Plyo box or step platform."},
	{ID: MedicineBall, Label: "Medicine Ball", Description: "Med ball or wall ball."},
	{ID: SlamBall, Label: "Slam Ball", Description: "Heavy ball for slams."},
	{ID: TRX, Label: "TRX / Suspension", Description: "Suspension trainer straps."},
	{ID: JumpRope, Label: "Jump Rope", Description: "Speed rope or weighted rope."},
	{ID: Sliders, Label: "Sliders / Gliders", Description: "Core and lower-body sliders."},
	{ID: ExerciseBall, Label: "Exercise Ball", Description: "Swiss ball, stability ball."},
	{ID: Rower, Label: "Rowing Machine", Description: "Erg or water rower."},
	{ID: Bike, Label: "Bike / Air Bike", Description: "Stationary bike, spin bike, or assault bike."},
	{ID: Treadmill, Label: "Treadmill", Description: "Motorized or manual treadmill."},
	{ID: Elliptical, Label: "Elliptical", Description: "Elliptical trainer."},
}

// Label returns the display label for an id, or the id itself when it is
// not a known option.
func Label(id ID) string {
	for _, opt := range Options {
		if opt.ID == id {
			return opt.Label
		}
	}
	return string(id)
}

// legacyMap translates equipment labels from older profile records to
// canonical ids. Unknown keys are not an error; Resolve keeps them as-is.
var legacyMap = map[string]ID{
	"None (Bodyweight)": Bodyweight,
	"Dumbbells":         Dumbbells,
	"Kettlebell":        Kettlebell,
	"Pull-up Bar":       PullUpBar,
	"Jump Rope":         JumpRope,
	"Box":               StepBox,
	"kettlebells":       Kettlebell,
	"resistance_bands":  ResistanceBandsLoop,
	"stationary_bike":   Bike,
	"step_or_box":       StepBox,
	"weight_machines":   Bench, // closest available equivalent
}

// Resolve normalizes a raw equipment selection: legacy labels are mapped
// to canonical ids, duplicates are removed, and an empty result falls
// back to bodyweight. It is total — any input, including garbage tokens,
// yields a usable non-empty set.
func Resolve(raw []string) ([]ID, Richness) {
	seen := make(map[ID]bool, len(raw))
	var set []ID
	for _, item := range raw {
		id, ok := legacyMap[item]
		if !ok {
			id = ID(item)
		}
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		set = append(set, id)
	}
	if len(set) == 0 {
		set = []ID{Bodyweight}
	}
	return set, ClassifyRichness(set)
}

// ClassifyRichness applies the richness rule: only bodyweight is
// minimal, any heavy strength or cardio machine is full, otherwise
// moderate.
func ClassifyRichness(set []ID) Richness {
	if len(set) == 1 && set[0] == Bodyweight {
		return RichnessMinimal
	}
	for _, id := range set {
		switch id {
		case Barbell, Rower, Bike, Treadmill:
			return RichnessFull
		}
	}
	return RichnessModerate
}

// Contains reports whether the set includes id.
func Contains(set []ID, id ID) bool {
	for _, item := range set {
		if item == id {
			return true
		}
	}
	return false
}

// Subset reports whether every id in required is present in available.
func Subset(required, available []ID) bool {
	for _, id := range required {
		if !Contains(available, id) {
			return false
		}
	}
	return true
}
