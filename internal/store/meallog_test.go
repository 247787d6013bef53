package store

import (
	"os"
	"path/filepath"
	"testing"

	"nutrisnap/internal/database"
	"nutrisnap/internal/models"
	"nutrisnap/internal/monitoring"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T) database.Backend {
	backend, err := database.NewFileBackend(t.TempDir())
	assert.NoError(t, err)
	return backend
}

func newTestMealLog(t *testing.T, backend database.Backend) *MealLog {
	return NewMealLog(backend, zap.NewNop(), monitoring.NewMetricsCollector())
}

func TestMealLog_AddAssignsIdentity(t *testing.T) {
	log := newTestMealLog(t, newTestBackend(t))

	meal := log.Add(models.MealDraft{
		NutrientProfile: models.NutrientProfile{Calories: 500, Protein: 30},
		DishName:        "Chicken Salad",
		MealType:        models.MealLunch,
	})

	assert.NotEmpty(t, meal.ID)
	assert.False(t, meal.LoggedAt.IsZero())
	assert.Equal(t, "Chicken Salad", meal.DishName)
	assert.Equal(t, 500.0, meal.Calories)
}

func TestMealLog_AddClampsNegatives(t *testing.T) {
	log := newTestMealLog(t, newTestBackend(t))

	meal := log.Add(models.MealDraft{
		NutrientProfile: models.NutrientProfile{Calories: -100, Protein: 20},
		DishName:        "Bad Estimate",
	})

	assert.Equal(t, 0.0, meal.Calories)
	assert.Equal(t, 20.0, meal.Protein)
}

func TestMealLog_PreservesInsertionOrder(t *testing.T) {
	log := newTestMealLog(t, newTestBackend(t))

	log.Add(models.MealDraft{DishName: "first"})
	log.Add(models.MealDraft{DishName: "second"})
	log.Add(models.MealDraft{DishName: "third"})

	meals := log.Meals()
	assert.Len(t, meals, 3)
	assert.Equal(t, "first", meals[0].DishName)
	assert.Equal(t, "second", meals[1].DishName)
	assert.Equal(t, "third", meals[2].DishName)
}

func TestMealLog_Remove(t *testing.T) {
	log := newTestMealLog(t, newTestBackend(t))

	log.Add(models.MealDraft{DishName: "keep one"})
	target := log.Add(models.MealDraft{DishName: "remove me"})
	log.Add(models.MealDraft{DishName: "keep two"})

	assert.True(t, log.Remove(target.ID))

	meals := log.Meals()
	assert.Len(t, meals, 2)
	assert.Equal(t, "keep one", meals[0].DishName)
	assert.Equal(t, "keep two", meals[1].DishName)

	// Removing an unknown id is a no-op
	assert.False(t, log.Remove("no-such-id"))
	assert.Len(t, log.Meals(), 2)
}

func TestMealLog_RoundTrip(t *testing.T) {
	backend := newTestBackend(t)

	log := newTestMealLog(t, backend)
	added := log.Add(models.MealDraft{
		NutrientProfile: models.NutrientProfile{Calories: 750, Iron: 4.2},
		DishName:        "Beef Stew",
		Ingredients:     []string{"beef", "carrots", "potatoes"},
		MealType:        models.MealDinner,
	})

	// Fresh store over the same backend sees the persisted log
	reloaded := newTestMealLog(t, backend)
	meals := reloaded.Meals()
	assert.Len(t, meals, 1)
	assert.Equal(t, added.ID, meals[0].ID)
	assert.Equal(t, "Beef Stew", meals[0].DishName)
	assert.Equal(t, []string{"beef", "carrots", "potatoes"}, meals[0].Ingredients)
	assert.Equal(t, 4.2, meals[0].Iron)
}

func TestMealLog_CorruptBlobStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	backend, err := database.NewFileBackend(dir)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, MealLogKey+".json"), []byte("{not json"), 0o644))

	log := newTestMealLog(t, backend)
	assert.Empty(t, log.Meals())
}

func TestMealLog_ReadsPreVersionedBlob(t *testing.T) {
	backend := newTestBackend(t)
	legacy := []byte(`[{"id":"old-1","dishName":"Legacy Meal","calories":400,"loggedAt":"2024-05-01T12:00:00Z"}]`)
	assert.NoError(t, backend.Store(MealLogKey, legacy))

	log := newTestMealLog(t, backend)
	meals := log.Meals()
	assert.Len(t, meals, 1)
	assert.Equal(t, "Legacy Meal", meals[0].DishName)
	assert.Equal(t, 400.0, meals[0].Calories)
}

func TestMealLog_ClampsOnLoad(t *testing.T) {
	backend := newTestBackend(t)
	blob := []byte(`{"version":1,"meals":[{"id":"m1","dishName":"Tampered","calories":-200,"protein":15,"loggedAt":"2024-05-01T12:00:00Z"}]}`)
	assert.NoError(t, backend.Store(MealLogKey, blob))

	log := newTestMealLog(t, backend)
	meals := log.Meals()
	assert.Len(t, meals, 1)
	assert.Equal(t, 0.0, meals[0].Calories)
	assert.Equal(t, 15.0, meals[0].Protein)
}
