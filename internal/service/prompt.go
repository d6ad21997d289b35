package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

// mealsPerDay is fixed: breakfast, lunch and dinner.
const mealsPerDay = 3

// mealSystemPrompt frames every meal-generation request.
const mealSystemPrompt = "You are an expert nutritionist who designs meals that hit " +
	"precise calorie and macronutrient targets. Respond only with a single JSON object " +
	"in the requested format, with no surrounding text."

// MealBudget is the share of the daily targets allotted to one meal
// slot. Values stay fractional until they are rounded into the prompt.
type MealBudget struct {
	Calories      float64
	Protein       float64
	Fat           float64
	Carbohydrates float64
}

// BudgetPerMeal splits the daily targets evenly across the three meal
// slots. There is no per-slot weighting.
func BudgetPerMeal(targets models.Targets) MealBudget {
	return MealBudget{
		Calories:      float64(targets.Calories) / mealsPerDay,
		Protein:       float64(targets.Protein) / mealsPerDay,
		Fat:           float64(targets.Fat) / mealsPerDay,
		Carbohydrates: float64(targets.Carbohydrates) / mealsPerDay,
	}
}

// BuildMealPrompt renders the generation instruction for one meal
// slot. The JSON shape it demands is the contract ParseMeal decodes.
func BuildMealPrompt(slot models.MealSlot, budget MealBudget, restrictions []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s that fits the following criteria:\n\n", strings.ToUpper(string(slot)))
	fmt.Fprintf(&b, "- Calories: %d\n", int(math.Round(budget.Calories)))
	fmt.Fprintf(&b, "- Protein: %dg\n", int(math.Round(budget.Protein)))
	fmt.Fprintf(&b, "- Fat: %dg\n", int(math.Round(budget.Fat)))
	fmt.Fprintf(&b, "- Carbohydrates: %dg\n", int(math.Round(budget.Carbohydrates)))
	if len(restrictions) > 0 {
		fmt.Fprintf(&b, "- Dietary Restrictions: %s\n", strings.Join(restrictions, ", "))
	}

	b.WriteString(`
Provide JSON:
{
    "meal_name": "...",
    "ingredients": [
        {"name": "food item", "quantity": "amount"},
        ...
    ],
    "instructions": "...",
    "calories": ...,
    "protein": ...,
    "fat": ...,
    "carbohydrates": ...
}
`)

	return b.String()
}
