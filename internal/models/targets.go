package models

import "math"

// Targets are the daily calorie and macro goals derived from a profile.
// Calories are kcal, macros are grams.
type Targets struct {
	Calories      int `json:"calories"`
	Protein       int `json:"protein"`
	Fat           int `json:"fat"`
	Carbohydrates int `json:"carbohydrates"`
}

// NewTargets rounds each value to the nearest integer and clamps it to
// zero. Intermediate math can go negative on extreme profiles; stored
// targets never do.
func NewTargets(calories, protein, fat, carbs float64) Targets {
	return Targets{
		Calories:      roundNonNegative(calories),
		Protein:       roundNonNegative(protein),
		Fat:           roundNonNegative(fat),
		Carbohydrates: roundNonNegative(carbs),
	}
}

func roundNonNegative(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}
