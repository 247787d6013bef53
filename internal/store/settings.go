package store

import (
	"encoding/json"
	"sync"

	"nutrisnap/internal/database"
	"nutrisnap/internal/models"
	"nutrisnap/internal/monitoring"

	"go.uber.org/zap"
)

// SettingsKey is the fixed storage key for the user settings blob.
const SettingsKey = "nutrisnap_user_settings"

const settingsVersion = 1

type settingsEnvelope struct {
	Version  int                 `json:"version"`
	Settings models.UserSettings `json:"settings"`
}

// Settings holds the user profile and daily goals with a load-on-start /
// save-on-mutate lifecycle.
type Settings struct {
	mu       sync.Mutex
	backend  database.Backend
	logger   *zap.Logger
	metrics  *monitoring.MetricsCollector
	settings models.UserSettings
}

// NewSettings loads persisted settings, back-filling every missing field from
// the defaults so the goals and profile shapes stay total.
func NewSettings(backend database.Backend, logger *zap.Logger, metrics *monitoring.MetricsCollector) *Settings {
	s := &Settings{
		backend:  backend,
		logger:   logger,
		metrics:  metrics,
		settings: models.DefaultSettings(),
	}
	s.load()
	return s
}

func (s *Settings) load() {
	data, err := s.backend.Load(SettingsKey)
	if err == database.ErrNotFound {
		return
	}
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults", zap.Error(err))
		return
	}

	var envelope settingsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.logger.Warn("corrupt settings, using defaults", zap.Error(err))
		return
	}

	loaded := envelope.Settings
	// A goals record of all zeros means the field was absent, not that the
	// user zeroed every target.
	if models.NutrientProfile(loaded.DailyGoals).IsZero() {
		loaded.DailyGoals = models.DefaultGoals()
	}
	if loaded.Profile.PositiveFeedbackOn == nil {
		loaded.Profile.PositiveFeedbackOn = []string{}
	}
	if loaded.Profile.NegativeFeedbackOn == nil {
		loaded.Profile.NegativeFeedbackOn = []string{}
	}
	s.settings = loaded
}

// Get returns a snapshot of the current settings.
func (s *Settings) Get() models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// UpdateGoals merges the patch into the daily goals and persists.
func (s *Settings) UpdateGoals(patch models.GoalsPatch) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DailyGoals = patch.Apply(s.settings.DailyGoals)
	s.persist()
	return s.snapshot()
}

// UpdateProfile merges the patch into the profile and persists.
func (s *Settings) UpdateProfile(patch models.ProfilePatch) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Profile = patch.Apply(s.settings.Profile)
	s.persist()
	return s.snapshot()
}

// AddPositiveFeedback records that the user liked a dish. The dish leaves the
// negative set if it was there, so a dish is never both liked and disliked.
func (s *Settings) AddPositiveFeedback(dishName string) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Profile.PositiveFeedbackOn = addToSet(s.settings.Profile.PositiveFeedbackOn, dishName)
	s.settings.Profile.NegativeFeedbackOn = removeFromSet(s.settings.Profile.NegativeFeedbackOn, dishName)
	s.persist()
	return s.snapshot()
}

// AddNegativeFeedback records that the user disliked a dish, removing it from
// the positive set if present.
func (s *Settings) AddNegativeFeedback(dishName string) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Profile.NegativeFeedbackOn = addToSet(s.settings.Profile.NegativeFeedbackOn, dishName)
	s.settings.Profile.PositiveFeedbackOn = removeFromSet(s.settings.Profile.PositiveFeedbackOn, dishName)
	s.persist()
	return s.snapshot()
}

// snapshot copies the settings so callers cannot alias the internal slices.
// Callers hold s.mu.
func (s *Settings) snapshot() models.UserSettings {
	out := s.settings
	out.Profile.PositiveFeedbackOn = append([]string{}, s.settings.Profile.PositiveFeedbackOn...)
	out.Profile.NegativeFeedbackOn = append([]string{}, s.settings.Profile.NegativeFeedbackOn...)
	return out
}

// persist writes the settings blob. Callers hold s.mu.
func (s *Settings) persist() {
	envelope := settingsEnvelope{Version: settingsVersion, Settings: s.settings}
	data, err := json.Marshal(envelope)
	if err == nil {
		err = s.backend.Store(SettingsKey, data)
	}
	if err != nil {
		s.logger.Error("failed to persist settings", zap.Error(err))
		if s.metrics != nil {
			s.metrics.RecordPersistFailure("settings")
		}
	}
}

func addToSet(set []string, value string) []string {
	for _, v := range set {
		if v == value {
			return set
		}
	}
	return append(set, value)
}

func removeFromSet(set []string, value string) []string {
	out := set[:0]
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
