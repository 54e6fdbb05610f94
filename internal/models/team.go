package models

import "time"

// Team groups profiles behind a shared weekly goal. PasswordHash is a
// bcrypt hash; an empty hash means the team is open to anyone.
type Team struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	WeeklyGoal   int          `gorm:"not null" json:"weeklyGoal"`
	PasswordHash string       `json:"-"`
	LeaderID     string       `gorm:"not null" json:"leaderId"`
	CreatedBy    string       `gorm:"not null" json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
	Members      []TeamMember `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"members"`
}

const (
	TeamWeeklyGoalMin = 1
	TeamWeeklyGoalMax = 50
)

// TeamMember mirrors the owning profile's display fields at join time.
// The unique index on ProfileID is what actually holds the
// one-team-per-profile invariant.
type TeamMember struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	TeamID       string    `gorm:"not null;index" json:"teamId"`
	ProfileID    string    `gorm:"not null;uniqueIndex" json:"profileId"`
	Name         string    `gorm:"not null" json:"name"`
	ProfileImage string    `json:"profileImage"`
	JoinedAt     time.Time `gorm:"not null" json:"joinedAt"`
}

func (Team) TableName() string       { return "teams" }
func (TeamMember) TableName() string { return "team_members" }

// IsProtected reports whether joining requires a password.
func (team Team) IsProtected() bool { return team.PasswordHash != "" }

// MemberByProfile returns the membership row for a profile, if any.
func (team Team) MemberByProfile(profileID string) (TeamMember, bool) {
	for _, member := range team.Members {
		if member.ProfileID == profileID {
			return member, true
		}
	}
	return TeamMember{}, false
}
