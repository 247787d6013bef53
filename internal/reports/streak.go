package reports

import (
	"sort"
	"time"

	"nutrisnap/internal/models"
)

// CurrentStreak counts the consecutive calendar days with at least one logged
// meal, ending today or yesterday. Not having logged yet today keeps the
// streak alive; a missed yesterday breaks it to 0.
func CurrentStreak(meals []models.LoggedMeal, now time.Time) int {
	loc := now.Location()

	seen := map[time.Time]bool{}
	for _, meal := range meals {
		seen[dateOf(meal.LoggedAt, loc)] = true
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dateOf(now, loc)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 0
	expected := days[0]
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
