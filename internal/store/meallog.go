package store

import (
	"encoding/json"
	"sync"
	"time"

	"nutrisnap/internal/database"
	"nutrisnap/internal/models"
	"nutrisnap/internal/monitoring"

	"go.uber.org/zap"
)

// MealLogKey is the fixed storage key for the meal log blob.
const MealLogKey = "nutrisnap_meal_log"

const mealLogVersion = 1

type mealLogEnvelope struct {
	Version int                 `json:"version"`
	Meals   []models.LoggedMeal `json:"meals"`
}

// MealLog is the append-only store of logged meals. Entries are immutable
// once added; the only mutation is removal by id. Persistence is synchronous
// and best-effort: a failed write keeps the in-memory state for the session.
type MealLog struct {
	mu      sync.Mutex
	backend database.Backend
	logger  *zap.Logger
	metrics *monitoring.MetricsCollector
	meals   []models.LoggedMeal
}

// NewMealLog loads the persisted log from the backend. A missing blob means
// an empty log; a corrupt blob falls back to empty rather than failing.
func NewMealLog(backend database.Backend, logger *zap.Logger, metrics *monitoring.MetricsCollector) *MealLog {
	l := &MealLog{
		backend: backend,
		logger:  logger,
		metrics: metrics,
		meals:   []models.LoggedMeal{},
	}
	l.load()
	return l
}

func (l *MealLog) load() {
	data, err := l.backend.Load(MealLogKey)
	if err == database.ErrNotFound {
		return
	}
	if err != nil {
		l.logger.Warn("failed to load meal log, starting empty", zap.Error(err))
		return
	}

	var envelope mealLogEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		// Pre-versioned blobs were a bare meal list.
		var meals []models.LoggedMeal
		if err2 := json.Unmarshal(data, &meals); err2 != nil {
			l.logger.Warn("corrupt meal log, starting empty", zap.Error(err))
			return
		}
		envelope.Meals = meals
	}

	for _, meal := range envelope.Meals {
		meal.NutrientProfile = meal.NutrientProfile.Clamped()
		l.meals = append(l.meals, meal)
	}
}

// Add assigns a fresh id and current-instant timestamp to the draft, appends
// it and persists. The append stands even when the write fails.
func (l *MealLog) Add(draft models.MealDraft) models.LoggedMeal {
	now := time.Now()
	meal := models.LoggedMeal{
		NutrientProfile: draft.NutrientProfile.Clamped(),
		ID:              models.NewMealID(now),
		DishName:        draft.DishName,
		Ingredients:     draft.Ingredients,
		PhotoRef:        draft.PhotoRef,
		MealType:        draft.MealType,
		LoggedAt:        now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.meals = append(l.meals, meal)
	l.persist()
	if l.metrics != nil {
		l.metrics.RecordMealLogged()
	}
	return meal
}

// Remove deletes the meal with the given id if present, keeping the relative
// order of the remaining entries. Unknown ids are a no-op.
func (l *MealLog) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, meal := range l.meals {
		if meal.ID == id {
			l.meals = append(l.meals[:i], l.meals[i+1:]...)
			l.persist()
			if l.metrics != nil {
				l.metrics.RecordMealDeleted()
			}
			return true
		}
	}
	return false
}

// Meals returns the full log in insertion order.
func (l *MealLog) Meals() []models.LoggedMeal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.LoggedMeal, len(l.meals))
	copy(out, l.meals)
	return out
}

// persist writes the whole log. Callers hold l.mu.
func (l *MealLog) persist() {
	envelope := mealLogEnvelope{Version: mealLogVersion, Meals: l.meals}
	data, err := json.Marshal(envelope)
	if err == nil {
		err = l.backend.Store(MealLogKey, data)
	}
	if err != nil {
		l.logger.Error("failed to persist meal log", zap.Error(err))
		if l.metrics != nil {
			l.metrics.RecordPersistFailure("meal_log")
		}
	}
}
