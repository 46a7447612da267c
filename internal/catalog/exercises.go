package catalog

import "github.com/claude/reppulse/internal/equipment"

func bw() []equipment.ID { return []equipment.ID{equipment.Bodyweight} }

// defaultExercises is the built-in exercise library: 50+ movements
// across 15 equipment categories. Targets are reps per interval except
// for holds and machine intervals, where they are seconds.
var defaultExercises = []Exercise{
	// Bodyweight
	{Name: "Burpees", MuscleGroup: "full-body", Difficulty: TierIntermediate, Equipment: bw(), Targets: Targets{8, 12, 15}},
	{Name: "Air Squats", MuscleGroup: "legs", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{15, 25, 35}},
	{Name: "Push-ups", MuscleGroup: "chest", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{10, 20, 30}},
	{Name: "Mountain Climbers", MuscleGroup: "core", Difficulty: TierIntermediate, Equipment: bw(), Targets: Targets{20, 30, 40}},
	{Name: "Plank Hold", MuscleGroup: "core", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{30, 45, 60}, Hold: true},
	{Name: "Jumping Jacks", MuscleGroup: "cardio", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{20, 30, 40}},
	{Name: "Lunges", MuscleGroup: "legs", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{10, 16, 24}},
	{Name: "High Knees", MuscleGroup: "cardio", Difficulty: TierBeginner, Equipment: bw(), Targets: Targets{20, 30, 40}},
	{Name: "Squat Jumps", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: bw(), Targets: Targets{8, 12, 16}},

	// Dumbbells
	{Name: "Dumbbell Thrusters", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{8, 12, 15}},
	{Name: "Dumbbell Goblet Squats", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{10, 15, 20}},
	{Name: "Dumbbell Rows", MuscleGroup: "back", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{8, 12, 16}},
	{Name: "Dumbbell Snatches", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{6, 10, 14}},
	{Name: "Dumbbell Shoulder Press", MuscleGroup: "shoulders", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{8, 12, 16}},
	{Name: "Dumbbell Lunges", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Dumbbells}, Targets: Targets{8, 12, 16}},

	// Kettlebell
	{Name: "Kettlebell Swings", MuscleGroup: "posterior-chain", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Kettlebell}, Targets: Targets{12, 20, 30}},
	{Name: "Kettlebell Goblet Squats", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Kettlebell}, Targets: Targets{10, 15, 20}},
	{Name: "Kettlebell Clean & Press", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Kettlebell}, Targets: Targets{6, 10, 14}},
	{Name: "Kettlebell Turkish Get-ups", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Kettlebell}, Targets: Targets{4, 6, 10}},
	{Name: "Kettlebell Snatches", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Kettlebell}, Targets: Targets{6, 10, 14}},

	// Resistance bands
	{Name: "Band Pull-aparts", MuscleGroup: "shoulders", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.ResistanceBandsLoop}, Targets: Targets{15, 20, 25}},
	{Name: "Band Squats", MuscleGroup: "legs", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.ResistanceBandsLoop}, Targets: Targets{15, 20, 25}},
	{Name: "Band Rows", MuscleGroup: "back", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.ResistanceBandLong}, Targets: Targets{12, 15, 20}},
	{Name: "Band Chest Press", MuscleGroup: "chest", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.ResistanceBandLong}, Targets: Targets{10, 15, 20}},

	// Barbell
	{Name: "Barbell Thrusters", MuscleGroup: "full-body", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Barbell}, Targets: Targets{8, 12, 15}},
	{Name: "Barbell Front Squats", MuscleGroup: "legs", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Barbell}, Targets: Targets{8, 12, 15}},
	{Name: "Barbell Deadlifts", MuscleGroup: "posterior-chain", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Barbell}, Targets: Targets{8, 12, 15}},
	{Name: "Barbell Push Press", MuscleGroup: "shoulders", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Barbell}, Targets: Targets{8, 12, 15}},
	{Name: "Barbell Rows", MuscleGroup: "back", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Barbell}, Targets: Targets{8, 12, 15}},

	// Pull-up bar
	{Name: "Pull-ups", MuscleGroup: "back", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.PullUpBar}, Targets: Targets{3, 8, 12}},
	{Name: "Chin-ups", MuscleGroup: "back", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.PullUpBar}, Targets: Targets{3, 8, 12}},
	{Name: "Hanging Knee Raises", MuscleGroup: "core", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.PullUpBar}, Targets: Targets{8, 12, 16}},
	{Name: "Toes to Bar", MuscleGroup: "core", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.PullUpBar}, Targets: Targets{5, 10, 15}},

	// Bench
	{Name: "Bench Dips", MuscleGroup: "triceps", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.Bench}, Targets: Targets{10, 15, 20}},
	{Name: "Box Jumps (Bench)", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Bench}, Targets: Targets{8, 12, 16}},
	{Name: "Incline Push-ups", MuscleGroup: "chest", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.Bench}, Targets: Targets{12, 18, 25}},

	// Medicine ball
	{Name: "Med Ball Slams", MuscleGroup: "full-body", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.MedicineBall}, Targets: Targets{10, 15, 20}},
	{Name: "Med Ball Wall Balls", MuscleGroup: "full-body", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.MedicineBall}, Targets: Targets{10, 15, 20}},
	{Name: "Med Ball Russian Twists", MuscleGroup: "core", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.MedicineBall}, Targets: Targets{20, 30, 40}},
	{Name: "Med Ball Chest Pass", MuscleGroup: "chest", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.MedicineBall}, Targets: Targets{15, 20, 25}},

	// Jump rope
	{Name: "Double Unders", MuscleGroup: "cardio", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.JumpRope}, Targets: Targets{20, 40, 60}},
	{Name: "Single Unders", MuscleGroup: "cardio", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.JumpRope}, Targets: Targets{40, 60, 80}},

	// Cardio machines (targets are seconds of work)
	{Name: "Treadmill Sprint Intervals", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Treadmill}, Targets: Targets{30, 45, 60}, Hold: true},
	{Name: "Treadmill Incline Run", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Treadmill}, Targets: Targets{45, 60, 75}, Hold: true},
	{Name: "Bike Sprint Intervals", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Bike}, Targets: Targets{30, 45, 60}, Hold: true},
	{Name: "Bike Hill Climbs", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Bike}, Targets: Targets{45, 60, 75}, Hold: true},
	{Name: "Rowing Sprint Intervals", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Rower}, Targets: Targets{30, 45, 60}, Hold: true},
	{Name: "Rowing 500m", MuscleGroup: "cardio", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Rower}, Targets: Targets{120, 110, 100}, Hold: true},
	{Name: "Elliptical Sprint Intervals", MuscleGroup: "cardio", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.Elliptical}, Targets: Targets{30, 45, 60}, Hold: true},

	// Sliders
	{Name: "Slider Mountain Climbers", MuscleGroup: "core", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Sliders}, Targets: Targets{20, 30, 40}},
	{Name: "Slider Pike", MuscleGroup: "core", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.Sliders}, Targets: Targets{8, 12, 16}},
	{Name: "Slider Lunges", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.Sliders}, Targets: Targets{10, 15, 20}},

	// Step / box
	{Name: "Box Jumps", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.StepBox}, Targets: Targets{8, 12, 16}},
	{Name: "Box Step-ups", MuscleGroup: "legs", Difficulty: TierBeginner, Equipment: []equipment.ID{equipment.StepBox}, Targets: Targets{10, 16, 24}},
	{Name: "Lateral Box Step-overs", MuscleGroup: "legs", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.StepBox}, Targets: Targets{10, 15, 20}},

	// TRX / suspension
	{Name: "TRX Rows", MuscleGroup: "back", Difficulty: TierIntermediate, Equipment: []equipment.ID{equipment.TRX}, Targets: Targets{10, 15, 20}},
	{Name: "TRX Pike", MuscleGroup: "core", Difficulty: TierAdvanced, Equipment: []equipment.ID{equipment.TRX}, Targets: Targets{8, 12, 16}},
}
