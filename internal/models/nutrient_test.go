package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutrientProfile_Add(t *testing.T) {
	a := NutrientProfile{Calories: 500, Protein: 30, Iron: 2.5}
	b := NutrientProfile{Calories: 300, Carbs: 40, Iron: 1.2}

	sum := a.Add(b)

	assert.Equal(t, 800.0, sum.Calories)
	assert.Equal(t, 30.0, sum.Protein)
	assert.Equal(t, 40.0, sum.Carbs)
	assert.InDelta(t, 3.7, sum.Iron, 1e-9)
}

func TestNutrientProfile_DividedBy(t *testing.T) {
	p := NutrientProfile{Calories: 4000, Protein: 240, Iron: 36}

	half := p.DividedBy(2)
	assert.Equal(t, 2000.0, half.Calories)
	assert.Equal(t, 120.0, half.Protein)
	assert.Equal(t, 18.0, half.Iron)

	// Zero and negative divisors leave the profile untouched
	assert.Equal(t, p, p.DividedBy(0))
	assert.Equal(t, p, p.DividedBy(-1))
}

func TestNutrientProfile_Rounded(t *testing.T) {
	p := NutrientProfile{Calories: 1999.6, Protein: 82.4, Iron: 7.25}

	r := p.Rounded()

	assert.Equal(t, 2000.0, r.Calories)
	assert.Equal(t, 82.0, r.Protein)
	// Iron keeps one decimal place
	assert.InDelta(t, 7.3, r.Iron, 1e-9)
}

func TestNutrientProfile_Clamped(t *testing.T) {
	p := NutrientProfile{Calories: -50, Protein: 20, Iron: -0.1}

	c := p.Clamped()

	assert.Equal(t, 0.0, c.Calories)
	assert.Equal(t, 20.0, c.Protein)
	assert.Equal(t, 0.0, c.Iron)
}

func TestNutrientProfile_IsZero(t *testing.T) {
	assert.True(t, NutrientProfile{}.IsZero())
	assert.False(t, NutrientProfile{Sodium: 1}.IsZero())
}

func TestGoalsPatch_Apply(t *testing.T) {
	goals := DefaultGoals()
	calories := 1800.0
	iron := 20.0

	updated := GoalsPatch{Calories: &calories, Iron: &iron}.Apply(goals)

	assert.Equal(t, 1800.0, updated.Calories)
	assert.Equal(t, 20.0, updated.Iron)
	// Unpatched fields keep their previous values
	assert.Equal(t, goals.Protein, updated.Protein)
	assert.Equal(t, goals.Sodium, updated.Sodium)
}

func TestDefaultGoals(t *testing.T) {
	goals := DefaultGoals()

	assert.Equal(t, 2000.0, goals.Calories)
	assert.Equal(t, 120.0, goals.Protein)
	assert.Equal(t, 250.0, goals.Carbs)
	assert.Equal(t, 70.0, goals.Fats)
	assert.Equal(t, 18.0, goals.Iron)
}

func TestValidMealType(t *testing.T) {
	assert.True(t, ValidMealType(MealBreakfast))
	assert.True(t, ValidMealType(MealDessert))
	assert.True(t, ValidMealType("")) // optional field
	assert.False(t, ValidMealType("brunch"))
}
