package models

// FoodLogEntry is one logged food item. Timestamp is an ISO-8601
// string so the persisted file stays human-readable.
type FoodLogEntry struct {
	Timestamp string  `json:"timestamp"`
	FoodItem  string  `json:"food_item"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	Quantity  string  `json:"quantity"`
}

// ChatTurn is one message in the coach conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MealPlanSettings remembers how the stored plan was requested.
type MealPlanSettings struct {
	StartDate     string `json:"start_date,omitempty"`
	NumDays       int    `json:"num_days"`
	MealPrepLunch bool   `json:"meal_prep_lunch"`
}

// UserRecord aggregates everything persisted for one user. Targets,
// Meals and MealPlanSettings stay unset until first computed.
type UserRecord struct {
	Profile          Profile           `json:"profile"`
	Targets          *Targets          `json:"targets,omitempty"`
	Meals            MealPlan          `json:"meals,omitempty"`
	FoodLog          []FoodLogEntry    `json:"food_log"`
	CoachChat        []ChatTurn        `json:"coach_chat"`
	MealPlanSettings *MealPlanSettings `json:"meal_plan_settings,omitempty"`
}

// NewUserRecord returns an empty record ready for first use.
func NewUserRecord() UserRecord {
	return UserRecord{
		FoodLog:   []FoodLogEntry{},
		CoachChat: []ChatTurn{},
	}
}
