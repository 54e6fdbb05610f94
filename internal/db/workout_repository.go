package db

import (
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) FindByID(entryID string) (models.WorkoutEntry, error) {
	var entry models.WorkoutEntry
	if err := repo.database.First(&entry, "id = ?", entryID).Error; err != nil {
		return models.WorkoutEntry{}, err
	}
	return entry, nil
}

func (repo *WorkoutRepository) Create(entry *models.WorkoutEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WorkoutRepository) ListByProfile(profileID string) ([]models.WorkoutEntry, error) {
	entries := make([]models.WorkoutEntry, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WorkoutRepository) ListByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) ([]models.WorkoutEntry, error) {
	entries := make([]models.WorkoutEntry, 0)
	if err := repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, fromStart, toEnd).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WorkoutRepository) CountByProfile(profileID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WorkoutEntry{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *WorkoutRepository) CountByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WorkoutEntry{}).
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, fromStart, toEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
