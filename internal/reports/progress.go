package reports

import "nutrisnap/internal/models"

// State classifies progress toward a daily goal.
type State string

const (
	StateOnTrack State = "on_track"
	StateWarning State = "warning" // above 90% of goal
	StateOver    State = "over"    // above 105% of goal
)

// Ratio returns current/goal. A goal of 0 means "no target" and yields 0,
// never NaN or Inf.
func Ratio(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return current / goal
}

// StateFor classifies current against goal using the fixed thresholds.
func StateFor(current, goal float64) State {
	if goal <= 0 {
		return StateOnTrack
	}
	percentage := current / goal * 100
	if percentage > 105 {
		return StateOver
	}
	if percentage > 90 {
		return StateWarning
	}
	return StateOnTrack
}

// NutrientStatus is one progress-bar row: a nutrient's current value against
// its daily goal.
type NutrientStatus struct {
	Nutrient string  `json:"nutrient"`
	Unit     string  `json:"unit"`
	Current  float64 `json:"current"`
	Goal     float64 `json:"goal"`
	Ratio    float64 `json:"ratio"`
	State    State   `json:"state"`
}

var nutrientFields = []struct {
	name string
	unit string
	get  func(models.NutrientProfile) float64
}{
	{"calories", "kcal", func(p models.NutrientProfile) float64 { return p.Calories }},
	{"protein", "g", func(p models.NutrientProfile) float64 { return p.Protein }},
	{"carbs", "g", func(p models.NutrientProfile) float64 { return p.Carbs }},
	{"fats", "g", func(p models.NutrientProfile) float64 { return p.Fats }},
	{"fiber", "g", func(p models.NutrientProfile) float64 { return p.Fiber }},
	{"sodium", "mg", func(p models.NutrientProfile) float64 { return p.Sodium }},
	{"sugar", "g", func(p models.NutrientProfile) float64 { return p.Sugar }},
	{"potassium", "mg", func(p models.NutrientProfile) float64 { return p.Potassium }},
	{"vitaminC", "mg", func(p models.NutrientProfile) float64 { return p.VitaminC }},
	{"calcium", "mg", func(p models.NutrientProfile) float64 { return p.Calcium }},
	{"iron", "mg", func(p models.NutrientProfile) float64 { return p.Iron }},
}

// Statuses builds the per-nutrient progress rows for the dashboard.
func Statuses(totals models.NutrientProfile, goals models.DailyGoals) []NutrientStatus {
	goalProfile := models.NutrientProfile(goals)
	out := make([]NutrientStatus, 0, len(nutrientFields))
	for _, f := range nutrientFields {
		current := f.get(totals)
		goal := f.get(goalProfile)
		out = append(out, NutrientStatus{
			Nutrient: f.name,
			Unit:     f.unit,
			Current:  current,
			Goal:     goal,
			Ratio:    Ratio(current, goal),
			State:    StateFor(current, goal),
		})
	}
	return out
}
