package services

import (
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
)

// DateAtLocation truncates a moment to midnight of its calendar day in
// the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// WeekRange returns the Sunday-start week containing the reference
// moment as a half-open interval [Sunday 00:00, next Sunday 00:00).
// The Sunday-start convention is fixed and locale-independent.
func WeekRange(reference time.Time, location *time.Location) (time.Time, time.Time) {
	day := DateAtLocation(reference, location)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// WeeklyCount counts entries whose date falls inside the week window
// containing the reference moment.
func WeeklyCount(entries []models.WorkoutEntry, reference time.Time, location *time.Location) int {
	weekStart, weekEnd := WeekRange(reference, location)
	count := 0
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if !day.Before(weekStart) && day.Before(weekEnd) {
			count++
		}
	}
	return count
}

// ProgressPercent converts a weekly count against a goal into a capped
// percentage. A goal of zero or less means "no goal set" and yields 0;
// the caller decides how to present that state.
func ProgressPercent(count int, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	percent := float64(count) / float64(goal) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
