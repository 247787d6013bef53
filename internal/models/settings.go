package models

// DailyGoals holds the per-day target for each nutrient. Same shape and units
// as NutrientProfile.
type DailyGoals NutrientProfile

// DefaultGoals returns the out-of-the-box daily targets.
func DefaultGoals() DailyGoals {
	return DailyGoals{
		Calories:  2000,
		Protein:   120,
		Carbs:     250,
		Fats:      70,
		Fiber:     30,
		Sodium:    2300,
		Sugar:     50,
		Potassium: 3500,
		VitaminC:  90,
		Calcium:   1000,
		Iron:      18,
	}
}

// GoalsPatch is a partial goals update. Nil fields keep their current value.
type GoalsPatch struct {
	Calories  *float64 `json:"calories,omitempty"`
	Protein   *float64 `json:"protein,omitempty"`
	Carbs     *float64 `json:"carbs,omitempty"`
	Fats      *float64 `json:"fats,omitempty"`
	Fiber     *float64 `json:"fiber,omitempty"`
	Sodium    *float64 `json:"sodium,omitempty"`
	Sugar     *float64 `json:"sugar,omitempty"`
	Potassium *float64 `json:"potassium,omitempty"`
	VitaminC  *float64 `json:"vitaminC,omitempty"`
	Calcium   *float64 `json:"calcium,omitempty"`
	Iron      *float64 `json:"iron,omitempty"`
}

// Apply merges the patch into g, field-wise.
func (p GoalsPatch) Apply(g DailyGoals) DailyGoals {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&g.Calories, p.Calories)
	set(&g.Protein, p.Protein)
	set(&g.Carbs, p.Carbs)
	set(&g.Fats, p.Fats)
	set(&g.Fiber, p.Fiber)
	set(&g.Sodium, p.Sodium)
	set(&g.Sugar, p.Sugar)
	set(&g.Potassium, p.Potassium)
	set(&g.VitaminC, p.VitaminC)
	set(&g.Calcium, p.Calcium)
	set(&g.Iron, p.Iron)
	return g
}

// UserProfile holds the user's identity and AI-prompt context. The two
// feedback slices act as sets of dish names and feed straight into the
// suggestion prompt.
type UserProfile struct {
	Name               string   `json:"name,omitempty"`
	Avatar             string   `json:"avatar,omitempty"`
	DietaryPreference  string   `json:"dietaryPreference,omitempty"`
	Allergies          string   `json:"allergies,omitempty"`
	Likes              string   `json:"likes,omitempty"`
	Dislikes           string   `json:"dislikes,omitempty"`
	Weight             float64  `json:"weight,omitempty"` // kg
	Height             float64  `json:"height,omitempty"` // cm
	Gender             string   `json:"gender,omitempty"`
	PositiveFeedbackOn []string `json:"positiveFeedbackOn"`
	NegativeFeedbackOn []string `json:"negativeFeedbackOn"`
}

// ProfilePatch is a partial profile update. Nil fields keep their current
// value; the feedback sets are managed through the dedicated store calls.
type ProfilePatch struct {
	Name              *string  `json:"name,omitempty"`
	Avatar            *string  `json:"avatar,omitempty"`
	DietaryPreference *string  `json:"dietaryPreference,omitempty"`
	Allergies         *string  `json:"allergies,omitempty"`
	Likes             *string  `json:"likes,omitempty"`
	Dislikes          *string  `json:"dislikes,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
}

// Apply merges the patch into pr, field-wise.
func (p ProfilePatch) Apply(pr UserProfile) UserProfile {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Avatar != nil {
		pr.Avatar = *p.Avatar
	}
	if p.DietaryPreference != nil {
		pr.DietaryPreference = *p.DietaryPreference
	}
	if p.Allergies != nil {
		pr.Allergies = *p.Allergies
	}
	if p.Likes != nil {
		pr.Likes = *p.Likes
	}
	if p.Dislikes != nil {
		pr.Dislikes = *p.Dislikes
	}
	if p.Weight != nil {
		pr.Weight = *p.Weight
	}
	if p.Height != nil {
		pr.Height = *p.Height
	}
	if p.Gender != nil {
		pr.Gender = *p.Gender
	}
	return pr
}

// UserSettings is everything persisted for the single local user.
type UserSettings struct {
	Profile    UserProfile `json:"profile"`
	DailyGoals DailyGoals  `json:"dailyGoals"`
}

// DefaultSettings returns settings with default goals and an empty profile.
func DefaultSettings() UserSettings {
	return UserSettings{
		Profile: UserProfile{
			PositiveFeedbackOn: []string{},
			NegativeFeedbackOn: []string{},
		},
		DailyGoals: DefaultGoals(),
	}
}
