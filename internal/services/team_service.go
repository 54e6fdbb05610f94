package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaehyuncho/fitdiary/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type TeamStore interface {
	ListAll() ([]models.Team, error)
	FindByID(teamID string) (models.Team, error)
	FindByProfile(profileID string) (models.Team, bool, error)
	Create(team *models.Team) error
	UpdateByID(teamID string, updates map[string]any) error
	AddMember(member *models.TeamMember) error
	ApplyDeparture(teamID string, profileID string, newLeaderID string, deleteTeam bool) error
}

type TeamWorkoutCounter interface {
	CountByProfile(profileID string) (int64, error)
	CountByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) (int64, error)
}

type TeamService struct {
	teams    TeamStore
	workouts TeamWorkoutCounter
	location *time.Location
}

func NewTeamService(teams TeamStore, workouts TeamWorkoutCounter, location *time.Location) *TeamService {
	if location == nil {
		location = time.UTC
	}
	return &TeamService{
		teams:    teams,
		workouts: workouts,
		location: location,
	}
}

type TeamPatch struct {
	Name       string
	WeeklyGoal int
	Password   *string
}

// CreateTeam opens a new team with the creator as sole member and
// leader. An empty password leaves the team open to anyone.
func (service *TeamService) CreateTeam(creator models.Profile, name string, weeklyGoal int, password string, now time.Time) (models.Team, error) {
	if err := ValidateTeamInput(name, weeklyGoal); err != nil {
		return models.Team{}, err
	}
	if err := CanDoTeamActivity(creator); err != nil {
		return models.Team{}, err
	}
	if _, joined, err := service.teams.FindByProfile(creator.ID); err != nil {
		return models.Team{}, err
	} else if joined {
		return models.Team{}, ErrAlreadyInTeam
	}

	passwordHash, err := hashTeamPassword(password)
	if err != nil {
		return models.Team{}, err
	}

	team := models.Team{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		WeeklyGoal:   weeklyGoal,
		PasswordHash: passwordHash,
		LeaderID:     creator.ID,
		CreatedBy:    creator.ID,
		CreatedAt:    now,
		Members: []models.TeamMember{
			{
				ID:           uuid.NewString(),
				ProfileID:    creator.ID,
				Name:         creator.Name,
				ProfileImage: creator.ProfileImage,
				JoinedAt:     now,
			},
		},
	}

	if err := service.teams.Create(&team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// EditTeam changes name, goal and password only; membership is never
// touched here. Only the leader may edit.
func (service *TeamService) EditTeam(teamID string, editorID string, patch TeamPatch) (models.Team, error) {
	team, err := service.teams.FindByID(teamID)
	if err != nil {
		return models.Team{}, err
	}
	if team.LeaderID != editorID {
		return models.Team{}, ErrNotTeamLeader
	}
	if err := ValidateTeamInput(patch.Name, patch.WeeklyGoal); err != nil {
		return models.Team{}, err
	}

	updates := map[string]any{
		"name":        strings.TrimSpace(patch.Name),
		"weekly_goal": patch.WeeklyGoal,
	}
	if patch.Password != nil {
		passwordHash, err := hashTeamPassword(*patch.Password)
		if err != nil {
			return models.Team{}, err
		}
		updates["password_hash"] = passwordHash
	}

	if err := service.teams.UpdateByID(teamID, updates); err != nil {
		return models.Team{}, err
	}
	return service.teams.FindByID(teamID)
}

// JoinTeam adds a profile to a team. The single-membership invariant
// is checked here and additionally held by the unique index on
// team_members.profile_id.
func (service *TeamService) JoinTeam(teamID string, profile models.Profile, password string, now time.Time) (models.Team, error) {
	if err := CanDoTeamActivity(profile); err != nil {
		return models.Team{}, err
	}
	if _, joined, err := service.teams.FindByProfile(profile.ID); err != nil {
		return models.Team{}, err
	} else if joined {
		return models.Team{}, ErrAlreadyInTeam
	}

	team, err := service.teams.FindByID(teamID)
	if err != nil {
		return models.Team{}, err
	}
	if team.IsProtected() {
		if bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(password)) != nil {
			return models.Team{}, ErrWrongTeamPassword
		}
	}

	member := models.TeamMember{
		ID:           uuid.NewString(),
		TeamID:       team.ID,
		ProfileID:    profile.ID,
		Name:         profile.Name,
		ProfileImage: profile.ProfileImage,
		JoinedAt:     now,
	}
	if err := service.teams.AddMember(&member); err != nil {
		return models.Team{}, err
	}
	return service.teams.FindByID(teamID)
}

// LeaveTeam removes the member and settles the consequences: the
// earliest-joined remaining member inherits leadership, and an
// emptied team is deleted outright.
func (service *TeamService) LeaveTeam(teamID string, profileID string) (deleted bool, err error) {
	team, err := service.teams.FindByID(teamID)
	if err != nil {
		return false, err
	}
	if _, ok := team.MemberByProfile(profileID); !ok {
		return false, ErrNotTeamMember
	}

	newLeaderID, deleteTeam := SuccessorAfterDeparture(team, profileID)
	if err := service.teams.ApplyDeparture(teamID, profileID, newLeaderID, deleteTeam); err != nil {
		return false, err
	}
	return deleteTeam, nil
}

func (service *TeamService) ListTeams() ([]models.Team, error) {
	return service.teams.ListAll()
}

func (service *TeamService) FindTeam(teamID string) (models.Team, error) {
	return service.teams.FindByID(teamID)
}

func (service *TeamService) TeamForProfile(profileID string) (models.Team, bool, error) {
	return service.teams.FindByProfile(profileID)
}

// RankedMembers builds the member standings for the week containing
// the reference moment. Tier and weekly progress are derived from the
// workout log on every call, never read from storage.
func (service *TeamService) RankedMembers(team models.Team, reference time.Time) ([]RankedMember, error) {
	weekStart, weekEnd := WeekRange(reference, service.location)

	views := make([]RankedMember, 0, len(team.Members))
	for _, member := range team.Members {
		total, err := service.workouts.CountByProfile(member.ProfileID)
		if err != nil {
			return nil, err
		}
		weekly, err := service.workouts.CountByProfileRange(member.ProfileID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		views = append(views, RankedMember{
			TeamMember:     member,
			Tier:           TierForWorkouts(int(total)),
			WeeklyProgress: int(weekly),
			Percent:        ProgressPercent(int(weekly), team.WeeklyGoal),
		})
	}

	return RankMembers(views), nil
}

func hashTeamPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
