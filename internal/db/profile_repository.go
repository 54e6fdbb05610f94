package db

import (
	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByID(profileID string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.First(&profile, "id = ?", profileID).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}

func (repo *ProfileRepository) UpdateByID(profileID string, updates map[string]any) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
}
