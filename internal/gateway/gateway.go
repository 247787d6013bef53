// Package gateway is the boundary to the hosted generative model that
// estimates nutrition and suggests meals. The model itself is an external
// collaborator; this package owns prompts, transport and response parsing.
package gateway

import (
	"context"

	"nutrisnap/internal/models"
)

// ImageInput is a photo of a dish or a product barcode.
type ImageInput struct {
	Data        []byte
	MIME        string
	PortionSize string
}

// DescriptionInput is a free-text dish description.
type DescriptionInput struct {
	Description string
	PortionSize string
}

// SuggestionInput carries the user context for a meal-plan request. The
// feedback slices are passed to the prompt verbatim; there is no ranking
// beyond set membership.
type SuggestionInput struct {
	Language           string
	DietaryPreference  string
	Allergies          string
	Likes              string
	Dislikes           string
	RemainingCalories  float64
	PositiveFeedbackOn []string
	NegativeFeedbackOn []string
}

// Estimate is a structured nutrition estimate for one dish.
type Estimate struct {
	models.NutrientProfile
	DishName    string   `json:"dishName"`
	Confidence  float64  `json:"confidence"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Unidentified reports the "could not identify" signal: zero confidence and
// an all-zero profile. It is a valid result, not an error; the user may still
// log it or retry.
func (e Estimate) Unidentified() bool {
	return e.Confidence == 0 && e.NutrientProfile.IsZero()
}

// Estimator is the capability the rest of the application depends on.
type Estimator interface {
	AnalyzeImage(ctx context.Context, input ImageInput) (*Estimate, error)
	AnalyzeDescription(ctx context.Context, input DescriptionInput) (*Estimate, error)
	AnalyzeBarcode(ctx context.Context, input ImageInput) (*Estimate, error)
	SuggestMeals(ctx context.Context, input SuggestionInput) (*models.DayPlan, error)
}
