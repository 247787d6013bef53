package gateway

import (
	"fmt"
	"strings"
)

const estimateSchema = `Respond with a single JSON object and nothing else, using exactly these keys:
{
  "dishName": string,
  "confidence": number between 0.0 and 1.0,
  "ingredients": array of strings (empty if unknown),
  "calories": number (kcal),
  "protein": number (g),
  "carbs": number (g),
  "fats": number (g),
  "fiber": number (g),
  "sodium": number (mg),
  "sugar": number (g),
  "potassium": number (mg),
  "vitaminC": number (mg),
  "calcium": number (mg),
  "iron": number (mg)
}
If you cannot identify the food, return confidence 0 with every nutrient set to 0 and an empty ingredients list.`

func imagePrompt(portionSize string) string {
	return fmt.Sprintf(`You are a world-class nutritionist. Identify the food item in the attached photo and analyze the provided portion size to estimate its nutritional content.
Pay special attention to international cuisines to ensure accurate identification and analysis.

Portion Size: %s

First identify the dish, then provide the nutritional breakdown and the visible ingredients.

%s`, portionSize, estimateSchema)
}

func descriptionPrompt(description, portionSize string) string {
	return fmt.Sprintf(`You are a world-class nutritionist. Identify the dish from the description and analyze the provided portion size to estimate its nutritional content.
Pay special attention to international cuisines to ensure accurate identification and analysis.

Dish Description: %s
Portion Size: %s

First identify the dish name from the description, then provide the nutritional breakdown.

%s`, description, portionSize, estimateSchema)
}

func barcodePrompt() string {
	return fmt.Sprintf(`You are a product database expert with access to global barcode information and nutritional databases. Analyze the attached image to find a product barcode.

Follow these steps:
1. Scan the image to locate a product barcode (UPC, EAN, etc.).
2. Use the barcode to identify the exact product.
3. Populate the ingredients list as it appears on the packaging; use an empty list if unavailable.
4. Report the nutrition exactly as it would appear on the product's label for the standard serving size. Do not estimate or guess.
5. If no barcode is visible, the barcode is unreadable, or the product cannot be found, return confidence 0 with every nutrient set to 0 and an empty ingredients list.
6. Always provide a confidence score: 1.0 means you found the exact product data, 0 means you failed.

%s`, estimateSchema)
}

const planSchema = `Respond with a single JSON object and nothing else, shaped as:
{
  "breakfast": { "dishName": string, "description": string, "ingredients": [string], "instructions": [string], "calories": number, "protein": number, "carbs": number, "fats": number, "fiber": number, "sodium": number, "sugar": number, "potassium": number, "vitaminC": number, "calcium": number, "iron": number },
  "lunch": { ...same shape... },
  "dinner": { ...same shape... },
  "snack": { ...same shape... },
  "dessert": { ...same shape... }
}`

func suggestPrompt(input SuggestionInput) string {
	language := input.Language
	if language == "" {
		language = "en"
	}

	var constraints []string
	if input.DietaryPreference != "" {
		constraints = append(constraints, "- Dietary preference: "+input.DietaryPreference)
	}
	if input.Allergies != "" {
		constraints = append(constraints, "- Allergies to avoid: "+input.Allergies)
	}
	if input.Likes != "" {
		constraints = append(constraints, "- User likes: "+input.Likes)
	}
	if input.Dislikes != "" {
		constraints = append(constraints, "- User dislikes: "+input.Dislikes)
	}
	if input.RemainingCalories > 0 {
		constraints = append(constraints, fmt.Sprintf("- The total calories across all suggested meals should be approximately %.0f kcal.", input.RemainingCalories))
	} else {
		constraints = append(constraints, "- Provide a generally healthy and balanced plan.")
	}
	if len(input.PositiveFeedbackOn) > 0 {
		constraints = append(constraints, "- The user previously liked these dishes, similar items are welcome: "+strings.Join(input.PositiveFeedbackOn, ", "))
	}
	if len(input.NegativeFeedbackOn) > 0 {
		constraints = append(constraints, "- The user previously disliked these dishes, avoid them and dishes like them: "+strings.Join(input.NegativeFeedbackOn, ", "))
	}

	return fmt.Sprintf(`You are an expert nutritionist and chef specializing in healthy and delicious meals, with a deep knowledge of international cuisines.
Generate a full day's meal plan (breakfast, lunch, dinner, a snack and a dessert) for the user.
All dish names, descriptions, ingredients and instructions MUST be in this language: %s.

Consider the following user constraints:
%s

Ensure the suggestions are healthy, balanced and appealing.

%s`, language, strings.Join(constraints, "\n"), planSchema)
}
