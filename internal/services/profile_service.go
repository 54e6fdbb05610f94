package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaehyuncho/fitdiary/internal/models"
)

var ErrEmptyProfileName = errors.New("empty profile name")

type ProfileStore interface {
	FindByID(profileID string) (models.Profile, error)
	Create(profile *models.Profile) error
	UpdateByID(profileID string, updates map[string]any) error
}

type MemberProfileSyncer interface {
	SyncMemberProfile(profileID string, name string, profileImage string) error
}

type ProfileService struct {
	profiles ProfileStore
	workouts WorkoutStore
	teams    TeamStore
	members  MemberProfileSyncer
	location *time.Location
}

func NewProfileService(profiles ProfileStore, workouts WorkoutStore, teams TeamStore, members MemberProfileSyncer, location *time.Location) *ProfileService {
	if location == nil {
		location = time.UTC
	}
	return &ProfileService{
		profiles: profiles,
		workouts: workouts,
		teams:    teams,
		members:  members,
		location: location,
	}
}

// ProfileOverview is a profile with everything derived from the
// workout log and team membership at load time.
type ProfileOverview struct {
	models.Profile
	Tier            string  `json:"tier"`
	TierEmoji       string  `json:"tierEmoji"`
	TotalWorkouts   int     `json:"totalWorkouts"`
	WeeklyCount     int     `json:"weeklyCount"`
	EffectiveGoal   int     `json:"effectiveGoal"`
	GoalFromTeam    bool    `json:"goalFromTeam"`
	ProgressPercent float64 `json:"progressPercent"`
}

// CreateDefault mints the blank profile a fresh device session is
// bound to.
func (service *ProfileService) CreateDefault(now time.Time) (models.Profile, error) {
	profile := models.Profile{
		ID:        uuid.NewString(),
		Name:      models.DefaultProfileName,
		CreatedAt: now,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (service *ProfileService) FindByID(profileID string) (models.Profile, error) {
	return service.profiles.FindByID(profileID)
}

type ProfilePatch struct {
	Name         string
	ProfileImage string
	BankAccount  string
	WeeklyGoal   int
}

// UpdateProfile saves the editable fields and propagates the display
// fields into any denormalized team membership row.
func (service *ProfileService) UpdateProfile(profileID string, patch ProfilePatch) (models.Profile, error) {
	name := strings.TrimSpace(patch.Name)
	if name == "" {
		return models.Profile{}, ErrEmptyProfileName
	}
	if patch.WeeklyGoal < 0 {
		return models.Profile{}, ErrGoalOutOfRange
	}

	if err := service.profiles.UpdateByID(profileID, map[string]any{
		"name":          name,
		"profile_image": patch.ProfileImage,
		"bank_account":  strings.TrimSpace(patch.BankAccount),
		"weekly_goal":   patch.WeeklyGoal,
	}); err != nil {
		return models.Profile{}, err
	}
	if err := service.members.SyncMemberProfile(profileID, name, patch.ProfileImage); err != nil {
		return models.Profile{}, err
	}
	return service.profiles.FindByID(profileID)
}

// Overview recomputes every derived field. The team's weekly goal
// overrides the personal one while the profile is a member.
func (service *ProfileService) Overview(profileID string, now time.Time) (ProfileOverview, error) {
	profile, err := service.profiles.FindByID(profileID)
	if err != nil {
		return ProfileOverview{}, err
	}

	total, err := service.workouts.CountByProfile(profileID)
	if err != nil {
		return ProfileOverview{}, err
	}

	weekStart, weekEnd := WeekRange(now, service.location)
	weekly, err := service.workouts.CountByProfileRange(profileID, weekStart, weekEnd)
	if err != nil {
		return ProfileOverview{}, err
	}

	effectiveGoal := profile.WeeklyGoal
	goalFromTeam := false
	if team, joined, err := service.teams.FindByProfile(profileID); err != nil {
		return ProfileOverview{}, err
	} else if joined {
		effectiveGoal = team.WeeklyGoal
		goalFromTeam = true
	}

	tier := TierForWorkouts(int(total))
	return ProfileOverview{
		Profile:         profile,
		Tier:            tier,
		TierEmoji:       TierEmoji(tier),
		TotalWorkouts:   int(total),
		WeeklyCount:     int(weekly),
		EffectiveGoal:   effectiveGoal,
		GoalFromTeam:    goalFromTeam,
		ProgressPercent: ProgressPercent(int(weekly), effectiveGoal),
	}, nil
}
