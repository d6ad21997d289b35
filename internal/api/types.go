package api

// MealPlanRequest asks for a fresh multi-day plan.
type MealPlanRequest struct {
	NumDays   int    `json:"num_days" binding:"required,min=1"`
	MealPrep  bool   `json:"meal_prep"`
	StartDate string `json:"start_date"`
}

// FoodLogRequest logs one consumed item. Macro fields are whatever the
// user reports; they are not validated against a nutrition database.
type FoodLogRequest struct {
	FoodItem string  `json:"food_item" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Quantity string  `json:"quantity"`
}

// CoachRequest carries one chat message to the AI coach.
type CoachRequest struct {
	Message string `json:"message" binding:"required"`
}
