package models

// MealSlot is one of the fixed daily meal occasions.
type MealSlot string

const (
	SlotBreakfast MealSlot = "Breakfast"
	SlotLunch     MealSlot = "Lunch"
	SlotDinner    MealSlot = "Dinner"
)

// MealSlots lists the slots in generation order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// Ingredient is a single ingredient line in a generated meal.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Meal is one generated suggestion for one meal slot on one day. The
// macro numbers are whatever the model reported; they are not
// re-validated against the requested budget.
type Meal struct {
	MealName      string       `json:"meal_name"`
	Ingredients   []Ingredient `json:"ingredients"`
	Instructions  string       `json:"instructions"`
	Calories      float64      `json:"calories"`
	Protein       float64      `json:"protein"`
	Fat           float64      `json:"fat"`
	Carbohydrates float64      `json:"carbohydrates"`
}

// FallbackMealName marks a meal slot that could not be generated.
const FallbackMealName = "Error Meal"

// FallbackMeal returns the placeholder substituted when a transport
// call fails or the model output cannot be parsed.
func FallbackMeal() Meal {
	return Meal{
		MealName:     FallbackMealName,
		Ingredients:  []Ingredient{},
		Instructions: "Error",
	}
}

// IsFallback reports whether the meal is the error placeholder.
func (m Meal) IsFallback() bool {
	return m.MealName == FallbackMealName
}

// MealPlan maps day labels ("Day 1" .. "Day N") to the meals generated
// for each slot of that day.
type MealPlan map[string]map[MealSlot]Meal

// Analysis is the structured feedback returned for a logged food entry.
type Analysis struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// FallbackAnalysis returns the placeholder substituted when food-entry
// analysis fails.
func FallbackAnalysis() Analysis {
	return Analysis{
		Analysis:        "Error occurred.",
		Recommendations: []string{},
	}
}
