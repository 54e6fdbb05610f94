package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaehyuncho/fitdiary/internal/models"
)

var (
	ErrExerciseNameRequired = errors.New("exercise name required")
	ErrProofImageRequired   = errors.New("proof image required")
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrNotEntryOwner        = errors.New("not the entry owner")
)

type WorkoutStore interface {
	FindByID(entryID string) (models.WorkoutEntry, error)
	Create(entry *models.WorkoutEntry) error
	ListByProfile(profileID string) ([]models.WorkoutEntry, error)
	ListByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) ([]models.WorkoutEntry, error)
	CountByProfile(profileID string) (int64, error)
	CountByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) (int64, error)
}

type WorkoutInput struct {
	ExerciseName    string
	Comment         string
	DurationMinutes int
	ImageRef        string
}

type WorkoutService struct {
	workouts WorkoutStore
	location *time.Location
}

func NewWorkoutService(workouts WorkoutStore, location *time.Location) *WorkoutService {
	if location == nil {
		location = time.UTC
	}
	return &WorkoutService{
		workouts: workouts,
		location: location,
	}
}

// LogWorkout records a proof-of-workout entry. The photo is
// mandatory, the duration optional, and the entry's date is fixed to
// the calendar day of creation.
func (service *WorkoutService) LogWorkout(profile models.Profile, input WorkoutInput, now time.Time) (models.WorkoutEntry, error) {
	if strings.TrimSpace(input.ExerciseName) == "" {
		return models.WorkoutEntry{}, ErrExerciseNameRequired
	}
	if strings.TrimSpace(input.ImageRef) == "" {
		return models.WorkoutEntry{}, ErrProofImageRequired
	}
	if input.DurationMinutes < 0 {
		return models.WorkoutEntry{}, ErrInvalidDuration
	}

	entry := models.WorkoutEntry{
		ID:              uuid.NewString(),
		ProfileID:       profile.ID,
		ProfileName:     profile.Name,
		Date:            DateAtLocation(now, service.location),
		ExerciseName:    strings.TrimSpace(input.ExerciseName),
		Comment:         strings.TrimSpace(input.Comment),
		DurationMinutes: input.DurationMinutes,
		ImageRef:        input.ImageRef,
		CreatedAt:       now,
	}
	if err := service.workouts.Create(&entry); err != nil {
		return models.WorkoutEntry{}, err
	}
	return entry, nil
}

func (service *WorkoutService) ListEntries(profileID string) ([]models.WorkoutEntry, error) {
	return service.workouts.ListByProfile(profileID)
}

// FindEntry returns an entry only to its owner.
func (service *WorkoutService) FindEntry(entryID string, profileID string) (models.WorkoutEntry, error) {
	entry, err := service.workouts.FindByID(entryID)
	if err != nil {
		return models.WorkoutEntry{}, err
	}
	if entry.ProfileID != profileID {
		return models.WorkoutEntry{}, ErrNotEntryOwner
	}
	return entry, nil
}

func (service *WorkoutService) TotalWorkouts(profileID string) (int, error) {
	total, err := service.workouts.CountByProfile(profileID)
	return int(total), err
}

// WeeklyWorkouts counts the profile's entries inside the Sunday-start
// week containing the reference moment.
func (service *WorkoutService) WeeklyWorkouts(profileID string, reference time.Time) (int, error) {
	weekStart, weekEnd := WeekRange(reference, service.location)
	count, err := service.workouts.CountByProfileRange(profileID, weekStart, weekEnd)
	return int(count), err
}
