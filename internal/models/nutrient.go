package models

import "math"

// NutrientProfile is the fixed set of nutrition values tracked for every meal.
// Units: calories kcal; protein, carbs, fats, fiber and sugar grams; sodium,
// potassium, vitamin C, calcium and iron milligrams. Unknown values stay 0.
type NutrientProfile struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Fiber     float64 `json:"fiber"`
	Sodium    float64 `json:"sodium"`
	Sugar     float64 `json:"sugar"`
	Potassium float64 `json:"potassium"`
	VitaminC  float64 `json:"vitaminC"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
}

// Add returns the field-wise sum of p and o.
func (p NutrientProfile) Add(o NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories:  p.Calories + o.Calories,
		Protein:   p.Protein + o.Protein,
		Carbs:     p.Carbs + o.Carbs,
		Fats:      p.Fats + o.Fats,
		Fiber:     p.Fiber + o.Fiber,
		Sodium:    p.Sodium + o.Sodium,
		Sugar:     p.Sugar + o.Sugar,
		Potassium: p.Potassium + o.Potassium,
		VitaminC:  p.VitaminC + o.VitaminC,
		Calcium:   p.Calcium + o.Calcium,
		Iron:      p.Iron + o.Iron,
	}
}

// DividedBy returns every field divided by d. A divisor of 0 or less returns
// p unchanged, so callers never produce NaN or Inf.
func (p NutrientProfile) DividedBy(d float64) NutrientProfile {
	if d <= 0 {
		return p
	}
	return NutrientProfile{
		Calories:  p.Calories / d,
		Protein:   p.Protein / d,
		Carbs:     p.Carbs / d,
		Fats:      p.Fats / d,
		Fiber:     p.Fiber / d,
		Sodium:    p.Sodium / d,
		Sugar:     p.Sugar / d,
		Potassium: p.Potassium / d,
		VitaminC:  p.VitaminC / d,
		Calcium:   p.Calcium / d,
		Iron:      p.Iron / d,
	}
}

// Rounded returns the profile rounded for display: whole units everywhere
// except iron, which is reported to one decimal place because daily iron
// targets are small (~18 mg).
func (p NutrientProfile) Rounded() NutrientProfile {
	return NutrientProfile{
		Calories:  math.Round(p.Calories),
		Protein:   math.Round(p.Protein),
		Carbs:     math.Round(p.Carbs),
		Fats:      math.Round(p.Fats),
		Fiber:     math.Round(p.Fiber),
		Sodium:    math.Round(p.Sodium),
		Sugar:     math.Round(p.Sugar),
		Potassium: math.Round(p.Potassium),
		VitaminC:  math.Round(p.VitaminC),
		Calcium:   math.Round(p.Calcium),
		Iron:      math.Round(p.Iron*10) / 10,
	}
}

// Clamped replaces any negative field with 0. Persisted data and model output
// both pass through here so the non-negativity invariant holds everywhere.
func (p NutrientProfile) Clamped() NutrientProfile {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return NutrientProfile{
		Calories:  clamp(p.Calories),
		Protein:   clamp(p.Protein),
		Carbs:     clamp(p.Carbs),
		Fats:      clamp(p.Fats),
		Fiber:     clamp(p.Fiber),
		Sodium:    clamp(p.Sodium),
		Sugar:     clamp(p.Sugar),
		Potassium: clamp(p.Potassium),
		VitaminC:  clamp(p.VitaminC),
		Calcium:   clamp(p.Calcium),
		Iron:      clamp(p.Iron),
	}
}

// IsZero reports whether every field is 0.
func (p NutrientProfile) IsZero() bool {
	return p == NutrientProfile{}
}
