package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nutrisnap/internal/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// LLMEstimator implements Estimator on top of a langchaingo model. Any
// OpenAI-compatible endpoint works.
type LLMEstimator struct {
	model       llms.Model
	temperature float64
}

// NewLLMEstimator wraps the given model. Estimation runs at low temperature
// so repeated analyses of the same dish stay close.
func NewLLMEstimator(model llms.Model) *LLMEstimator {
	return &LLMEstimator{model: model, temperature: 0.2}
}

// AnalyzeImage estimates nutrition from a food photo.
func (e *LLMEstimator) AnalyzeImage(ctx context.Context, input ImageInput) (*Estimate, error) {
	text, err := e.generate(ctx, imagePrompt(input.PortionSize), input.Data, input.MIME)
	if err != nil {
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}
	return parseEstimate(text)
}

// AnalyzeDescription estimates nutrition from a free-text dish description.
func (e *LLMEstimator) AnalyzeDescription(ctx context.Context, input DescriptionInput) (*Estimate, error) {
	text, err := e.generate(ctx, descriptionPrompt(input.Description, input.PortionSize), nil, "")
	if err != nil {
		return nil, fmt.Errorf("description analysis failed: %w", err)
	}
	return parseEstimate(text)
}

// AnalyzeBarcode looks up a product from a barcode photo.
func (e *LLMEstimator) AnalyzeBarcode(ctx context.Context, input ImageInput) (*Estimate, error) {
	text, err := e.generate(ctx, barcodePrompt(), input.Data, input.MIME)
	if err != nil {
		return nil, fmt.Errorf("barcode analysis failed: %w", err)
	}
	return parseEstimate(text)
}

// SuggestMeals generates a full day's meal plan from the user's constraints.
func (e *LLMEstimator) SuggestMeals(ctx context.Context, input SuggestionInput) (*models.DayPlan, error) {
	text, err := e.generate(ctx, suggestPrompt(input), nil, "")
	if err != nil {
		return nil, fmt.Errorf("meal suggestion failed: %w", err)
	}
	return parseDayPlan(text)
}

func (e *LLMEstimator) generate(ctx context.Context, prompt string, image []byte, mime string) (string, error) {
	parts := []llms.ContentPart{llms.TextPart(prompt)}
	if len(image) > 0 {
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, llms.BinaryPart(mime, image))
	}

	response, err := e.model.GenerateContent(ctx,
		[]llms.MessageContent{{Role: schema.ChatMessageTypeHuman, Parts: parts}},
		llms.WithTemperature(e.temperature),
	)
	if err != nil {
		return "", err
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return response.Choices[0].Content, nil
}

// stripFences removes a markdown code fence around the model output, which
// some models add despite the JSON-only instruction.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func parseEstimate(text string) (*Estimate, error) {
	text = stripFences(text)

	// Check the shape before the full unmarshal so a hallucinated envelope
	// fails loudly instead of producing a half-zero estimate.
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	for _, field := range []string{"dishName", "calories", "protein", "carbs", "fats"} {
		if _, exists := raw[field]; !exists {
			return nil, fmt.Errorf("model response missing required field %q", field)
		}
	}

	var estimate Estimate
	if err := json.Unmarshal([]byte(text), &estimate); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	estimate.NutrientProfile = estimate.NutrientProfile.Clamped()
	if _, exists := raw["confidence"]; !exists {
		estimate.Confidence = 1
	}
	if estimate.Confidence < 0 {
		estimate.Confidence = 0
	}
	if estimate.Confidence > 1 {
		estimate.Confidence = 1
	}
	return &estimate, nil
}

func parseDayPlan(text string) (*models.DayPlan, error) {
	text = stripFences(text)

	var plan models.DayPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan: %w", err)
	}

	for slot, s := range map[string]models.MealSuggestion{
		"breakfast": plan.Breakfast,
		"lunch":     plan.Lunch,
		"dinner":    plan.Dinner,
		"snack":     plan.Snack,
		"dessert":   plan.Dessert,
	} {
		if s.DishName == "" {
			return nil, fmt.Errorf("meal plan missing %s", slot)
		}
	}

	plan.Breakfast.NutrientProfile = plan.Breakfast.NutrientProfile.Clamped()
	plan.Lunch.NutrientProfile = plan.Lunch.NutrientProfile.Clamped()
	plan.Dinner.NutrientProfile = plan.Dinner.NutrientProfile.Clamped()
	plan.Snack.NutrientProfile = plan.Snack.NutrientProfile.Clamped()
	plan.Dessert.NutrientProfile = plan.Dessert.NutrientProfile.Clamped()
	return &plan, nil
}
