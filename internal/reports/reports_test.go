package reports

import (
	"testing"
	"time"

	"nutrisnap/internal/models"

	"github.com/stretchr/testify/assert"
)

func mealAt(at time.Time, calories, protein float64) models.LoggedMeal {
	return models.LoggedMeal{
		NutrientProfile: models.NutrientProfile{Calories: calories, Protein: protein},
		ID:              models.NewMealID(at),
		DishName:        "test dish",
		LoggedAt:        at,
	}
}

func TestTodayTotals(t *testing.T) {
	// Wednesday 15 May 2024
	now := time.Date(2024, 5, 15, 18, 0, 0, 0, time.UTC)
	meals := []models.LoggedMeal{
		mealAt(now.Add(-10*time.Hour), 300, 20), // 08:00 today
		mealAt(now.Add(-5*time.Hour), 500, 35),  // 13:00 today
		mealAt(now.Add(-1*time.Hour), 450, 27),  // 17:00 today
		mealAt(now.AddDate(0, 0, -1), 900, 60),  // yesterday
	}

	totals := TodayTotals(meals, now)

	assert.Equal(t, 1250.0, totals.Calories)
	assert.Equal(t, 82.0, totals.Protein)
}

func TestTodayTotals_Empty(t *testing.T) {
	now := time.Date(2024, 5, 15, 18, 0, 0, 0, time.UTC)
	totals := TodayTotals(nil, now)
	assert.True(t, totals.IsZero())
}

func TestTodayTotals_MidnightBoundary(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 30, 0, 0, time.UTC)
	meals := []models.LoggedMeal{
		mealAt(time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC), 600, 0),
		mealAt(time.Date(2024, 5, 15, 0, 10, 0, 0, time.UTC), 200, 0),
	}

	totals := TodayTotals(meals, now)
	assert.Equal(t, 200.0, totals.Calories)
}

func TestAggregateRange_DailyFillsEmptyBuckets(t *testing.T) {
	// Seven-day window ending Wednesday 15 May 2024
	to := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -6)
	meals := []models.LoggedMeal{
		mealAt(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), 400, 25),
		mealAt(time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC), 600, 40),
		mealAt(time.Date(2024, 5, 14, 13, 0, 0, 0, time.UTC), 800, 50),
	}

	periods := AggregateRange(meals, from, to, Daily)

	assert.Len(t, periods, 7)
	assert.Equal(t, "Thu", periods[0].Label)
	assert.Equal(t, "Wed", periods[6].Label)

	// Friday 10 May holds the sum of its two meals
	assert.Equal(t, "Fri", periods[1].Label)
	assert.Equal(t, 1000.0, periods[1].Nutrients.Calories)
	assert.Equal(t, 65.0, periods[1].Nutrients.Protein)

	// Days without meals are present and zero
	assert.Equal(t, "Sat", periods[2].Label)
	assert.True(t, periods[2].Nutrients.IsZero())

	assert.Equal(t, 800.0, periods[5].Nutrients.Calories)
}

func TestAggregateRange_WeeklyAveragesPerLoggedDay(t *testing.T) {
	// One week, meals on two of its days: 4000 kcal over 2 logged days
	// averages to 2000, not 4000/7.
	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	meals := []models.LoggedMeal{
		mealAt(monday.Add(9*time.Hour), 1500, 90),
		mealAt(monday.AddDate(0, 0, 2).Add(12*time.Hour), 1200, 60),
		mealAt(monday.AddDate(0, 0, 2).Add(19*time.Hour), 1300, 70),
	}

	periods := AggregateRange(meals, monday, monday.AddDate(0, 0, 6), Weekly)

	assert.Len(t, periods, 1)
	assert.Equal(t, "6 May", periods[0].Label)
	assert.Equal(t, 2000.0, periods[0].Nutrients.Calories)
	assert.Equal(t, 110.0, periods[0].Nutrients.Protein)
}

func TestAggregateRange_WeeklySkipsEmptyWeeks(t *testing.T) {
	// Meals three weeks apart; the empty week in between is not emitted.
	first := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) // Monday
	last := first.AddDate(0, 0, 14)
	meals := []models.LoggedMeal{
		mealAt(first, 1800, 100),
		mealAt(last, 2200, 120),
	}

	periods := AggregateRange(meals, first, last, Weekly)

	assert.Len(t, periods, 2)
	assert.Equal(t, "1 Apr", periods[0].Label)
	assert.Equal(t, "15 Apr", periods[1].Label)
}

func TestAggregateRange_WeeksStartMonday(t *testing.T) {
	// Sunday 12 May and Monday 13 May 2024 fall into different weeks.
	sunday := time.Date(2024, 5, 12, 12, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)
	meals := []models.LoggedMeal{
		mealAt(sunday, 1000, 50),
		mealAt(monday, 2000, 100),
	}

	periods := AggregateRange(meals, sunday, monday, Weekly)

	assert.Len(t, periods, 2)
	assert.Equal(t, "6 May", periods[0].Label)
	assert.Equal(t, 1000.0, periods[0].Nutrients.Calories)
	assert.Equal(t, "13 May", periods[1].Label)
	assert.Equal(t, 2000.0, periods[1].Nutrients.Calories)
}

func TestAggregateRange_MonthlyLabels(t *testing.T) {
	meals := []models.LoggedMeal{
		mealAt(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), 1500, 80),
		mealAt(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC), 1800, 95),
	}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	periods := AggregateRange(meals, from, to, Monthly)

	// April has no meals and is skipped
	assert.Len(t, periods, 2)
	assert.Equal(t, "March", periods[0].Label)
	assert.Equal(t, "May", periods[1].Label)
}

func TestAggregateRange_RoundsForDisplay(t *testing.T) {
	// Three logged days: 100/3 protein rounds to 33, iron keeps one decimal.
	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	var meals []models.LoggedMeal
	for i := 0; i < 3; i++ {
		m := mealAt(monday.AddDate(0, 0, i).Add(12*time.Hour), 500, 100.0/3)
		m.Iron = 5.0 / 3
		meals = append(meals, m)
	}

	periods := AggregateRange(meals, monday, monday.AddDate(0, 0, 6), Weekly)

	assert.Len(t, periods, 1)
	assert.Equal(t, 33.0, periods[0].Nutrients.Protein)
	assert.InDelta(t, 1.7, periods[0].Nutrients.Iron, 1e-9)
}

func TestValidGranularity(t *testing.T) {
	assert.True(t, ValidGranularity(Daily))
	assert.True(t, ValidGranularity(Weekly))
	assert.True(t, ValidGranularity(Monthly))
	assert.False(t, ValidGranularity("year"))
	assert.False(t, ValidGranularity(""))
}
