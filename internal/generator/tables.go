package generator

import "github.com/fitflow/fitflow/internal/domain"

// prescription is the per-workout-type baseline before adaptation.
type prescription struct {
	RepsMin     int
	RepsMax     int
	TargetRPE   float64
	RestSeconds int
	NextHint    string
	LongHint    string
}

// prescriptions maps each workout type onto its rep range, effort target and
// rest interval. Tunable parameters.
var prescriptions = map[domain.WorkoutType]prescription{
	domain.WorkoutStrength: {
		RepsMin: 3, RepsMax: 6, TargetRPE: 8, RestSeconds: 180,
		NextHint: "Add 2.5 kg when all sets hit the top of the range",
		LongHint: "Aim for a 2-4% working-weight increase per month",
	},
	domain.WorkoutHypertrophy: {
		RepsMin: 8, RepsMax: 12, TargetRPE: 7.5, RestSeconds: 90,
		NextHint: "Add one rep per set before adding weight",
		LongHint: "Add one weekly set per muscle group every 3-4 weeks",
	},
	domain.WorkoutPower: {
		RepsMin: 2, RepsMax: 5, TargetRPE: 8, RestSeconds: 180,
		NextHint: "Keep bar speed high; cut the set when it slows",
		LongHint: "Rotate explosive variations every 4-6 weeks",
	},
	domain.WorkoutEndurance: {
		RepsMin: 15, RepsMax: 20, TargetRPE: 6, RestSeconds: 45,
		NextHint: "Shorten rest by 5s once all sets feel controlled",
		LongHint: "Build toward higher total rep counts before adding load",
	},
	domain.WorkoutRecovery: {
		RepsMin: 10, RepsMax: 15, TargetRPE: 5, RestSeconds: 60,
		NextHint: "Stay well clear of failure on every set",
		LongHint: "Use recovery sessions to rehearse technique under light load",
	},
}

// setsForVolumeScore maps the optimizer's 0-100 volume target onto work sets
// per exercise.
func setsForVolumeScore(score float64) int {
	switch {
	case score < 40:
		return 2
	case score < 60:
		return 3
	case score < 80:
		return 4
	default:
		return 5
	}
}

// intensityBand labels the session by its mean target effort.
func intensityBand(avgRPE float64) string {
	switch {
	case avgRPE >= 8.5:
		return "max"
	case avgRPE >= 7.5:
		return "hard"
	case avgRPE >= 6:
		return "moderate"
	default:
		return "light"
	}
}

// generalWarmup opens every session.
var generalWarmup = domain.GeneratedExercise{
	ExerciseID:    "warmup-general-mobility",
	Name:          "General Mobility Flow",
	MuscleGroups:  []string{"full_body"},
	TargetSets:    1,
	TargetRepsMin: 10,
	TargetRepsMax: 10,
	RestSeconds:   0,
	Notes:         []string{"5 minutes of light full-body movement"},
}

// preventionWarmup is prepended by the injury adaptation rule.
var preventionWarmup = domain.GeneratedExercise{
	ExerciseID:    "warmup-injury-prevention",
	Name:          "Injury Prevention Circuit",
	MuscleGroups:  []string{"full_body"},
	TargetSets:    2,
	TargetRepsMin: 12,
	TargetRepsMax: 12,
	RestSeconds:   30,
	Notes:         []string{"Band work and controlled range-of-motion drills for at-risk areas"},
}

func muscleWarmup(group string) domain.GeneratedExercise {
	return domain.GeneratedExercise{
		ExerciseID:    "warmup-" + group + "-activation",
		Name:          "Activation: " + group,
		MuscleGroups:  []string{group},
		TargetSets:    1,
		TargetRepsMin: 12,
		TargetRepsMax: 15,
		RestSeconds:   30,
	}
}

// cooldown is the fixed five-item closing sequence of every session.
var cooldown = []domain.GeneratedExercise{
	{ExerciseID: "cooldown-walk", Name: "Easy Walk or Cycle", MuscleGroups: []string{"full_body"}, TargetSets: 1, TargetRepsMin: 1, TargetRepsMax: 1, Notes: []string{"3-5 minutes at conversational pace"}},
	{ExerciseID: "cooldown-quad-stretch", Name: "Standing Quad Stretch", MuscleGroups: []string{"quads"}, TargetSets: 1, TargetRepsMin: 1, TargetRepsMax: 1, RestSeconds: 0, Notes: []string{"30 seconds per side"}},
	{ExerciseID: "cooldown-hamstring-stretch", Name: "Seated Hamstring Stretch", MuscleGroups: []string{"hamstrings"}, TargetSets: 1, TargetRepsMin: 1, TargetRepsMax: 1, Notes: []string{"30 seconds per side"}},
	{ExerciseID: "cooldown-chest-stretch", Name: "Doorway Chest Stretch", MuscleGroups: []string{"chest"}, TargetSets: 1, TargetRepsMin: 1, TargetRepsMax: 1, Notes: []string{"30 seconds"}},
	{ExerciseID: "cooldown-breathing", Name: "Box Breathing", MuscleGroups: []string{"full_body"}, TargetSets: 1, TargetRepsMin: 5, TargetRepsMax: 5, Notes: []string{"Slow nasal breathing, 4-4-4-4 cadence"}},
}
