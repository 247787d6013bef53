// Package reports turns the raw meal log into daily totals, period charts,
// streaks and goal progress.
package reports

import (
	"time"

	"nutrisnap/internal/models"
)

// Granularity selects the bucket size for a report.
type Granularity string

const (
	Daily   Granularity = "day"
	Weekly  Granularity = "week"
	Monthly Granularity = "month"
)

// ValidGranularity reports whether g is a known bucket size.
func ValidGranularity(g Granularity) bool {
	switch g {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// AggregatedPeriod is one chart bucket: a label plus the nutrient values for
// that period. Daily buckets hold totals; weekly and monthly buckets hold the
// average per logged day. Derived on demand, never persisted.
type AggregatedPeriod struct {
	Label     string                 `json:"label"`
	Nutrients models.NutrientProfile `json:"nutrients"`
}

// TodayTotals sums every nutrient across the meals logged on the calendar day
// of now, in now's location.
func TodayTotals(meals []models.LoggedMeal, now time.Time) models.NutrientProfile {
	loc := now.Location()
	today := dateOf(now, loc)

	var totals models.NutrientProfile
	for _, meal := range meals {
		if dateOf(meal.LoggedAt, loc).Equal(today) {
			totals = totals.Add(meal.NutrientProfile)
		}
	}
	return totals
}

// AggregateRange buckets the meals between from and to (inclusive) at the
// given granularity, in from's location.
//
// Day buckets cover every calendar day in the range even when empty, so a
// 7-day chart always has 7 bars. Week and month buckets are only emitted when
// they contain at least one meal, since the range may start at the very first
// logged meal and everything before is unbounded silence. Weeks run Monday
// through Sunday.
//
// Values are totals for day granularity and averages per logged day (not per
// calendar day) for week and month, rounded for display.
func AggregateRange(meals []models.LoggedMeal, from, to time.Time, g Granularity) []AggregatedPeriod {
	loc := from.Location()
	rangeEnd := dateOf(to, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)

	var periods []AggregatedPeriod
	for start := bucketStart(from, g, loc); !start.After(rangeEnd); start = nextBucket(start, g) {
		end := nextBucket(start, g).Add(-time.Nanosecond)
		if end.After(rangeEnd) && g == Daily {
			end = rangeEnd
		}

		var totals models.NutrientProfile
		loggedDays := map[time.Time]bool{}
		count := 0
		for _, meal := range meals {
			if meal.LoggedAt.Before(start) || meal.LoggedAt.After(end) {
				continue
			}
			totals = totals.Add(meal.NutrientProfile)
			loggedDays[dateOf(meal.LoggedAt, loc)] = true
			count++
		}

		if g != Daily {
			if count == 0 {
				continue
			}
			totals = totals.DividedBy(float64(len(loggedDays)))
		}

		periods = append(periods, AggregatedPeriod{
			Label:     bucketLabel(start, g),
			Nutrients: totals.Rounded(),
		})
	}
	return periods
}

// dateOf truncates an instant to its calendar day in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// bucketStart aligns t to the start of its bucket.
func bucketStart(t time.Time, g Granularity, loc *time.Location) time.Time {
	day := dateOf(t, loc)
	switch g {
	case Weekly:
		// ISO weeks: Monday is day 0.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return day
	}
}

func nextBucket(start time.Time, g Granularity) time.Time {
	switch g {
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

func bucketLabel(start time.Time, g Granularity) string {
	switch g {
	case Weekly:
		return start.Format("2 Jan")
	case Monthly:
		return start.Format("January")
	default:
		return start.Format("Mon")
	}
}
