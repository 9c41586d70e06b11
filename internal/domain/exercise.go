package domain

// ExerciseCatalogEntry describes one exercise in the caller-supplied catalog.
// Ids are stable across requests, so catalog lookups are the one thing this
// core is allowed to cache.
// @Description Exercise catalog entry with muscle-group and equipment tags.
type ExerciseCatalogEntry struct {
	ID   string `json:"id" example:"barbell-back-squat"`
	Name string `json:"name" example:"Barbell Back Squat"`
	// Movement category, e.g. compound, isolation, mobility
	Category string `json:"category" example:"compound"`
	// Primary muscle groups trained
	PrimaryMuscles []string `json:"primary_muscles" example:"quads,glutes"`
	// Secondary muscle groups involved
	SecondaryMuscles []string `json:"secondary_muscles,omitempty" example:"core"`
	// Equipment tags required to perform the exercise
	Equipment []string `json:"equipment" example:"barbell,rack"`
	// Minimum experience level the exercise suits
	Difficulty FitnessLevel `json:"difficulty" example:"intermediate"`
	// Catalog ids of interchangeable alternatives, best first
	Alternatives []string `json:"alternatives,omitempty" example:"goblet-squat,leg-press"`
}

// EquipmentSatisfiedBy reports whether every equipment tag of the entry is in
// the available set. Bodyweight exercises (no tags) always satisfy.
func (e ExerciseCatalogEntry) EquipmentSatisfiedBy(available map[string]bool) bool {
	for _, eq := range e.Equipment {
		if !available[eq] {
			return false
		}
	}
	return true
}

// TrainsMuscle reports whether the exercise targets the given muscle group,
// primarily or secondarily.
func (e ExerciseCatalogEntry) TrainsMuscle(group string) bool {
	for _, m := range e.PrimaryMuscles {
		if m == group {
			return true
		}
	}
	for _, m := range e.SecondaryMuscles {
		if m == group {
			return true
		}
	}
	return false
}
