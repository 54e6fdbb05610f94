package db

import (
	"errors"
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type VoteRepository struct {
	database *gorm.DB
}

func NewVoteRepository(database *gorm.DB) *VoteRepository {
	return &VoteRepository{database: database}
}

func (repo *VoteRepository) FindByID(voteID string) (models.RemovalVote, error) {
	var vote models.RemovalVote
	if err := repo.database.First(&vote, "id = ?", voteID).Error; err != nil {
		return models.RemovalVote{}, err
	}
	return vote, nil
}

func (repo *VoteRepository) FindActiveByTeam(teamID string) (models.RemovalVote, bool, error) {
	var vote models.RemovalVote
	err := repo.database.
		First(&vote, "team_id = ? AND status = ?", teamID, models.VoteStatusActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RemovalVote{}, false, nil
	}
	if err != nil {
		return models.RemovalVote{}, false, err
	}
	return vote, true, nil
}

func (repo *VoteRepository) ListExpiredActive(now time.Time) ([]models.RemovalVote, error) {
	votes := make([]models.RemovalVote, 0)
	if err := repo.database.
		Where("status = ? AND end_date <= ?", models.VoteStatusActive, now).
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (repo *VoteRepository) Create(vote *models.RemovalVote) error {
	return repo.database.Create(vote).Error
}

func (repo *VoteRepository) Save(vote *models.RemovalVote) error {
	return repo.database.Save(vote).Error
}
