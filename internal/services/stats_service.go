package services

import (
	"sort"
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
)

// StatsService aggregates a profile's workout log into the calendar
// views: per-day counts, a week of bars and a monthly trend.
type StatsService struct {
	workouts WorkoutStore
	location *time.Location
}

func NewStatsService(workouts WorkoutStore, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		workouts: workouts,
		location: location,
	}
}

type DayStat struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Workouts int    `json:"workouts"`
}

type MonthStat struct {
	Month    string `json:"month"`
	Workouts int    `json:"workouts"`
}

const dayStatFormat = "2006-01-02"

// maxTrendMonths caps the monthly trend to the most recent buckets.
const maxTrendMonths = 6

// WeekBars returns seven per-day counts for the Sunday-start week
// containing the reference moment.
func (service *StatsService) WeekBars(profileID string, reference time.Time) ([]DayStat, error) {
	weekStart, weekEnd := WeekRange(reference, service.location)
	entries, err := service.workouts.ListByProfileRange(profileID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	countsByDay := make(map[string]int, 7)
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, service.location).Format(dayStatFormat)
		countsByDay[day]++
	}

	bars := make([]DayStat, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		key := day.Format(dayStatFormat)
		bars = append(bars, DayStat{
			Date:     key,
			Weekday:  day.Weekday().String(),
			Workouts: countsByDay[key],
		})
	}
	return bars, nil
}

// EntriesOn returns the profile's entries for one calendar day.
func (service *StatsService) EntriesOn(profileID string, day time.Time) ([]models.WorkoutEntry, error) {
	dayStart := DateAtLocation(day, service.location)
	return service.workouts.ListByProfileRange(profileID, dayStart, dayStart.AddDate(0, 0, 1))
}

// MonthlyTrend buckets the whole log by month, in chronological
// order, keeping only the most recent six buckets with data.
func (service *StatsService) MonthlyTrend(profileID string) ([]MonthStat, error) {
	entries, err := service.workouts.ListByProfile(profileID)
	if err != nil {
		return nil, err
	}

	countsByMonth := make(map[string]int)
	for _, entry := range entries {
		month := DateAtLocation(entry.Date, service.location).Format("2006-01")
		countsByMonth[month]++
	}

	months := make([]string, 0, len(countsByMonth))
	for month := range countsByMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > maxTrendMonths {
		months = months[len(months)-maxTrendMonths:]
	}

	trend := make([]MonthStat, 0, len(months))
	for _, month := range months {
		trend = append(trend, MonthStat{Month: month, Workouts: countsByMonth[month]})
	}
	return trend, nil
}
