package models

import (
	"time"

	"github.com/google/uuid"
)

// MealType tags a logged meal with the slot it belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealDessert   MealType = "dessert"
)

// ValidMealType reports whether t is one of the known meal slots. The empty
// string is also valid: the tag is optional.
func ValidMealType(t MealType) bool {
	switch t {
	case "", MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert:
		return true
	}
	return false
}

// MealDraft is a user-confirmed estimate ready to be logged. The store
// assigns the id and timestamp.
type MealDraft struct {
	NutrientProfile
	DishName    string   `json:"dishName"`
	Ingredients []string `json:"ingredients,omitempty"`
	PhotoRef    string   `json:"photoRef,omitempty"`
	MealType    MealType `json:"mealType,omitempty"`
}

// LoggedMeal is one confirmed food entry. Immutable once logged; editing
// means delete and re-add.
type LoggedMeal struct {
	NutrientProfile
	ID          string    `json:"id"`
	DishName    string    `json:"dishName"`
	Ingredients []string  `json:"ingredients,omitempty"`
	PhotoRef    string    `json:"photoRef,omitempty"`
	MealType    MealType  `json:"mealType,omitempty"`
	LoggedAt    time.Time `json:"loggedAt"`
}

// NewMealID builds a meal id from the log instant plus a random suffix, so
// ids sort chronologically and collisions are negligible.
func NewMealID(at time.Time) string {
	return at.UTC().Format(time.RFC3339Nano) + "-" + uuid.NewString()[:8]
}
