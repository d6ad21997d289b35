package service

import (
	"encoding/json"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

// ParseMeal decodes model output into a Meal. It fails soft: on any
// decode error or a missing meal name it returns the fallback
// placeholder instead of an error, so a bad response degrades one slot
// rather than aborting the plan.
func ParseMeal(raw string) models.Meal {
	var meal models.Meal
	if err := json.Unmarshal([]byte(raw), &meal); err != nil {
		return models.FallbackMeal()
	}
	if meal.MealName == "" {
		return models.FallbackMeal()
	}
	if meal.Ingredients == nil {
		meal.Ingredients = []models.Ingredient{}
	}
	return meal
}
