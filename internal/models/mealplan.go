package models

import "time"

// MealSlot is a named slot within a day's plan
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// MealSlots lists the slots in serving order
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// MealEntry is a single food item within a meal slot
type MealEntry struct {
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

// Macros is a per-day macronutrient breakdown in grams
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DailyMeals holds one day of the plan
type DailyMeals struct {
	Day           string                   `json:"day"`
	Meals         map[MealSlot][]MealEntry `json:"meals"`
	TotalCalories int                      `json:"totalCalories"`
	Macros        Macros                   `json:"macros"`
}

// MealPlan is a week-long plan owned by exactly one user.
// Replaced wholesale on every fetch or generation; never merged incrementally.
type MealPlan struct {
	ID        string       `json:"_id"`
	UserID    string       `json:"userId"`
	Week      []DailyMeals `json:"week"`
	CreatedAt time.Time    `json:"createdAt"`
}
