package reports

import (
	"strings"
	"testing"

	"nutrisnap/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.InDelta(t, 0.625, Ratio(1250, 2000), 1e-9)
	assert.Equal(t, 0.0, Ratio(1250, 0))
	assert.Equal(t, 0.0, Ratio(1250, -5))
	assert.Equal(t, 0.0, Ratio(0, 2000))
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, StateOnTrack, StateFor(1250, 2000)) // 62.5%
	assert.Equal(t, StateOnTrack, StateFor(1800, 2000)) // exactly 90%
	assert.Equal(t, StateWarning, StateFor(1900, 2000)) // 95%
	assert.Equal(t, StateWarning, StateFor(2100, 2000)) // exactly 105%
	assert.Equal(t, StateOver, StateFor(2200, 2000))    // 110%
	assert.Equal(t, StateOnTrack, StateFor(500, 0))     // no target
}

func TestStatuses(t *testing.T) {
	totals := models.NutrientProfile{Calories: 1250, Protein: 115, Sodium: 2500}
	goals := models.DefaultGoals()

	statuses := Statuses(totals, goals)

	assert.Len(t, statuses, 11)

	byName := map[string]NutrientStatus{}
	for _, s := range statuses {
		byName[s.Nutrient] = s
	}

	calories := byName["calories"]
	assert.Equal(t, "kcal", calories.Unit)
	assert.Equal(t, 1250.0, calories.Current)
	assert.Equal(t, 2000.0, calories.Goal)
	assert.InDelta(t, 0.625, calories.Ratio, 1e-9)
	assert.Equal(t, StateOnTrack, calories.State)

	// 115/120 is just under 96%
	assert.Equal(t, StateWarning, byName["protein"].State)

	// 2500/2300 is over 105%
	assert.Equal(t, StateOver, byName["sodium"].State)

	assert.Equal(t, StateOnTrack, byName["iron"].State)
	assert.Equal(t, 0.0, byName["iron"].Current)
}

func TestSummary(t *testing.T) {
	periods := []AggregatedPeriod{
		{Label: "Mon", Nutrients: models.NutrientProfile{Calories: 1800, Protein: 110, Iron: 15.5}},
		{Label: "Tue", Nutrients: models.NutrientProfile{Calories: 2200, Protein: 90, Iron: 16.5}},
	}

	text := Summary("Weekly Report", periods, models.DefaultGoals())

	assert.True(t, strings.HasPrefix(text, "Weekly Report\n"))
	assert.Contains(t, text, "== Macros ==")
	assert.Contains(t, text, "== Micros ==")
	// Averages of the two periods against the goals
	assert.Contains(t, text, "Calories: 2000 / 2000 kcal")
	assert.Contains(t, text, "Protein: 100.0 / 120 g")
	assert.Contains(t, text, "Iron: 16.0 / 18 mg")
}

func TestSummary_NoPeriods(t *testing.T) {
	assert.Equal(t, "", Summary("Weekly Report", nil, models.DefaultGoals()))
}
