package reports

import (
	"fmt"
	"strings"

	"nutrisnap/internal/models"
)

// Summary renders a shareable text report: the average of the given periods
// against the daily goals. Calories and the milligram minerals print as whole
// numbers, the rest to one decimal, iron included.
func Summary(title string, periods []AggregatedPeriod, goals models.DailyGoals) string {
	if len(periods) == 0 {
		return ""
	}

	var sum models.NutrientProfile
	for _, p := range periods {
		sum = sum.Add(p.Nutrients)
	}
	avg := sum.DividedBy(float64(len(periods)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	b.WriteString("== Macros ==\n")
	fmt.Fprintf(&b, "Calories: %.0f / %.0f kcal\n", avg.Calories, goals.Calories)
	fmt.Fprintf(&b, "Protein: %.1f / %.0f g\n", avg.Protein, goals.Protein)
	fmt.Fprintf(&b, "Carbs: %.1f / %.0f g\n", avg.Carbs, goals.Carbs)
	fmt.Fprintf(&b, "Fats: %.1f / %.0f g\n", avg.Fats, goals.Fats)
	fmt.Fprintf(&b, "Fiber: %.1f / %.0f g\n\n", avg.Fiber, goals.Fiber)
	b.WriteString("== Micros ==\n")
	fmt.Fprintf(&b, "Sodium: %.0f / %.0f mg\n", avg.Sodium, goals.Sodium)
	fmt.Fprintf(&b, "Sugar: %.1f / %.0f g\n", avg.Sugar, goals.Sugar)
	fmt.Fprintf(&b, "Potassium: %.0f / %.0f mg\n", avg.Potassium, goals.Potassium)
	fmt.Fprintf(&b, "Vitamin C: %.1f / %.0f mg\n", avg.VitaminC, goals.VitaminC)
	fmt.Fprintf(&b, "Calcium: %.0f / %.0f mg\n", avg.Calcium, goals.Calcium)
	fmt.Fprintf(&b, "Iron: %.1f / %.0f mg\n", avg.Iron, goals.Iron)
	return b.String()
}
