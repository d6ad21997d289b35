// Package nutrition implements the metabolic math that turns a user
// profile into daily calorie and macro targets.
package nutrition

import (
	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

const (
	poundsToKilograms   = 0.453592
	inchesToCentimeters = 2.54

	// Fat never drops below this share of the calorie target.
	fatCalorieFloor = 0.2

	proteinCaloriesPerGram = 4
	fatCaloriesPerGram     = 9
	carbCaloriesPerGram    = 4
)

// activityMultipliers scale BMR into TDEE. Unknown levels fall back to
// the sedentary multiplier.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

// calorieDeltas maps the weekly rate of progress to a daily calorie
// adjustment on top of TDEE (1 lb/week ~ 500 kcal/day).
var calorieDeltas = map[models.RateOfProgress]float64{
	models.RateLoseOne:  -500,
	models.RateLoseHalf: -250,
	models.RateMaintain: 0,
	models.RateGainHalf: 250,
	models.RateGainOne:  500,
}

// PoundsToKilograms converts body weight from pounds.
func PoundsToKilograms(lb float64) float64 {
	return lb * poundsToKilograms
}

// InchesToCentimeters converts height from inches.
func InchesToCentimeters(in float64) float64 {
	return in * inchesToCentimeters
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, sex models.BiologicalSex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == models.SexFemale {
		return bmr - 161
	}
	return bmr + 5
}

// TDEE scales BMR by the activity multiplier for the given level.
func TDEE(bmr float64, level models.ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * mult
}

// CalculateTargets derives the daily calorie and macro targets for a
// profile. It is total: missing optional fields take their defaults
// and every result is rounded and clamped to be non-negative.
//
// The calorie target is TDEE plus the additive rate-of-progress delta.
// Protein comes from the configured ratio against lean body mass (or
// total weight when LBM is unknown). Fat takes the larger of a 20%
// calorie floor and the remainder after protein and half of TDEE, and
// carbohydrates absorb whatever calories are left.
func CalculateTargets(profile models.Profile) models.Targets {
	p := profile
	p.Normalize()

	bmr := BMR(PoundsToKilograms(p.Weight), InchesToCentimeters(p.Height), p.Age, p.BiologicalSex)
	tdee := TDEE(bmr, p.ActivityLevel)

	calories := tdee + calorieDeltas[p.RateOfProgress]

	protein := p.ProteinTarget * p.ReferenceMass()
	proteinCalories := protein * proteinCaloriesPerGram

	fatCalories := calories - proteinCalories - 0.5*tdee
	if floor := fatCalorieFloor * calories; fatCalories < floor {
		fatCalories = floor
	}
	fat := fatCalories / fatCaloriesPerGram

	carbs := (calories - proteinCalories - fat*fatCaloriesPerGram) / carbCaloriesPerGram

	return models.NewTargets(calories, protein, fat, carbs)
}
