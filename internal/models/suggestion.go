package models

// MealSuggestion is one AI-proposed dish for a meal slot.
type MealSuggestion struct {
	NutrientProfile
	DishName     string   `json:"dishName"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}

// DayPlan is a full day of suggested meals.
type DayPlan struct {
	Breakfast MealSuggestion `json:"breakfast"`
	Lunch     MealSuggestion `json:"lunch"`
	Dinner    MealSuggestion `json:"dinner"`
	Snack     MealSuggestion `json:"snack"`
	Dessert   MealSuggestion `json:"dessert"`
}

// Testimonial is a piece of user feedback shown on the landing page.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}
