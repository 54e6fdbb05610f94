package db

import (
	"errors"

	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

func (repo *TeamRepository) ListAll() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := repo.database.
		Preload("Members").
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (repo *TeamRepository) FindByID(teamID string) (models.Team, error) {
	var team models.Team
	if err := repo.database.
		Preload("Members").
		First(&team, "id = ?", teamID).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// FindByProfile returns the team the profile belongs to, if any.
func (repo *TeamRepository) FindByProfile(profileID string) (models.Team, bool, error) {
	var membership models.TeamMember
	err := repo.database.First(&membership, "profile_id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Team{}, false, nil
	}
	if err != nil {
		return models.Team{}, false, err
	}

	team, err := repo.FindByID(membership.TeamID)
	if err != nil {
		return models.Team{}, false, err
	}
	return team, true, nil
}

func (repo *TeamRepository) Create(team *models.Team) error {
	return repo.database.Create(team).Error
}

func (repo *TeamRepository) UpdateByID(teamID string, updates map[string]any) error {
	return repo.database.Model(&models.Team{}).Where("id = ?", teamID).Updates(updates).Error
}

func (repo *TeamRepository) AddMember(member *models.TeamMember) error {
	return repo.database.Create(member).Error
}

// ApplyDeparture removes a member and applies the consequences the
// service decided on: a leadership handover, or deletion of a team
// left without members (together with its votes). Runs in one
// transaction so a crash cannot leave a leaderless team behind.
func (repo *TeamRepository) ApplyDeparture(teamID string, profileID string, newLeaderID string, deleteTeam bool) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND profile_id = ?", teamID, profileID).
			Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		if deleteTeam {
			if err := tx.Where("team_id = ?", teamID).Delete(&models.RemovalVote{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Team{}, "id = ?", teamID).Error
		}

		if newLeaderID != "" {
			return tx.Model(&models.Team{}).Where("id = ?", teamID).
				Update("leader_id", newLeaderID).Error
		}
		return nil
	})
}

// SyncMemberProfile propagates profile display changes into the
// denormalized membership rows.
func (repo *TeamRepository) SyncMemberProfile(profileID string, name string, profileImage string) error {
	return repo.database.Model(&models.TeamMember{}).
		Where("profile_id = ?", profileID).
		Updates(map[string]any{"name": name, "profile_image": profileImage}).Error
}
