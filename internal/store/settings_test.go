package store

import (
	"testing"

	"nutrisnap/internal/database"
	"nutrisnap/internal/models"
	"nutrisnap/internal/monitoring"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSettings(t *testing.T, backend database.Backend) *Settings {
	return NewSettings(backend, zap.NewNop(), monitoring.NewMetricsCollector())
}

func TestSettings_DefaultsOnFirstRun(t *testing.T) {
	s := newTestSettings(t, newTestBackend(t))

	settings := s.Get()
	assert.Equal(t, models.DefaultGoals(), settings.DailyGoals)
	assert.Empty(t, settings.Profile.PositiveFeedbackOn)
	assert.Empty(t, settings.Profile.NegativeFeedbackOn)
}

func TestSettings_UpdateGoalsIsPartial(t *testing.T) {
	s := newTestSettings(t, newTestBackend(t))

	calories := 1800.0
	settings := s.UpdateGoals(models.GoalsPatch{Calories: &calories})

	assert.Equal(t, 1800.0, settings.DailyGoals.Calories)
	// The rest keeps defaults
	assert.Equal(t, 120.0, settings.DailyGoals.Protein)
	assert.Equal(t, 18.0, settings.DailyGoals.Iron)
}

func TestSettings_UpdateProfile(t *testing.T) {
	s := newTestSettings(t, newTestBackend(t))

	name := "Alex"
	diet := "vegetarian"
	weight := 72.5
	settings := s.UpdateProfile(models.ProfilePatch{
		Name:              &name,
		DietaryPreference: &diet,
		Weight:            &weight,
	})

	assert.Equal(t, "Alex", settings.Profile.Name)
	assert.Equal(t, "vegetarian", settings.Profile.DietaryPreference)
	assert.Equal(t, 72.5, settings.Profile.Weight)
}

func TestSettings_RoundTrip(t *testing.T) {
	backend := newTestBackend(t)

	s := newTestSettings(t, backend)
	calories := 2200.0
	s.UpdateGoals(models.GoalsPatch{Calories: &calories})
	name := "Sam"
	s.UpdateProfile(models.ProfilePatch{Name: &name})
	s.AddPositiveFeedback("Lentil Soup")

	reloaded := newTestSettings(t, backend)
	settings := reloaded.Get()
	assert.Equal(t, 2200.0, settings.DailyGoals.Calories)
	assert.Equal(t, "Sam", settings.Profile.Name)
	assert.Equal(t, []string{"Lentil Soup"}, settings.Profile.PositiveFeedbackOn)
}

func TestSettings_FeedbackSetsAreExclusive(t *testing.T) {
	s := newTestSettings(t, newTestBackend(t))

	s.AddPositiveFeedback("Pad Thai")
	s.AddPositiveFeedback("Pad Thai") // idempotent
	settings := s.AddPositiveFeedback("Ramen")

	assert.ElementsMatch(t, []string{"Pad Thai", "Ramen"}, settings.Profile.PositiveFeedbackOn)

	// Disliking a previously liked dish moves it across
	settings = s.AddNegativeFeedback("Pad Thai")
	assert.Equal(t, []string{"Ramen"}, settings.Profile.PositiveFeedbackOn)
	assert.Equal(t, []string{"Pad Thai"}, settings.Profile.NegativeFeedbackOn)

	// And back again
	settings = s.AddPositiveFeedback("Pad Thai")
	assert.Empty(t, settings.Profile.NegativeFeedbackOn)
	assert.ElementsMatch(t, []string{"Ramen", "Pad Thai"}, settings.Profile.PositiveFeedbackOn)
}

func TestSettings_SnapshotsDoNotAlias(t *testing.T) {
	s := newTestSettings(t, newTestBackend(t))
	s.AddPositiveFeedback("Tacos")

	snapshot := s.Get()
	snapshot.Profile.PositiveFeedbackOn[0] = "mutated"

	assert.Equal(t, []string{"Tacos"}, s.Get().Profile.PositiveFeedbackOn)
}

func TestSettings_ZeroGoalsBlobBackfillsDefaults(t *testing.T) {
	backend := newTestBackend(t)
	blob := []byte(`{"version":1,"settings":{"profile":{"name":"Kim"},"dailyGoals":{}}}`)
	assert.NoError(t, backend.Store(SettingsKey, blob))

	s := newTestSettings(t, backend)
	settings := s.Get()
	assert.Equal(t, "Kim", settings.Profile.Name)
	assert.Equal(t, models.DefaultGoals(), settings.DailyGoals)
	assert.NotNil(t, settings.Profile.PositiveFeedbackOn)
	assert.NotNil(t, settings.Profile.NegativeFeedbackOn)
}

func TestSettings_CorruptBlobFallsBackToDefaults(t *testing.T) {
	backend := newTestBackend(t)
	assert.NoError(t, backend.Store(SettingsKey, []byte("%%%")))

	s := newTestSettings(t, backend)
	assert.Equal(t, models.DefaultSettings(), s.Get())
}
