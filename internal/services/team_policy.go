package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jaehyuncho/fitdiary/internal/models"
)

var (
	ErrEmptyTeamName       = errors.New("empty team name")
	ErrGoalOutOfRange      = errors.New("weekly goal out of range")
	ErrAlreadyInTeam       = errors.New("already in a team")
	ErrNotTeamMember       = errors.New("not a team member")
	ErrNotTeamLeader       = errors.New("not the team leader")
	ErrWrongTeamPassword   = errors.New("wrong team password")
	ErrBankAccountRequired = errors.New("bank account required")
)

// ValidateTeamInput checks the fields a user supplies when creating or
// editing a team.
func ValidateTeamInput(name string, weeklyGoal int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTeamName
	}
	if weeklyGoal < models.TeamWeeklyGoalMin || weeklyGoal > models.TeamWeeklyGoalMax {
		return ErrGoalOutOfRange
	}
	return nil
}

// CanDoTeamActivity gates team creation and joining on a registered
// bank account, since missed goals carry a penalty payment.
func CanDoTeamActivity(profile models.Profile) error {
	if strings.TrimSpace(profile.BankAccount) == "" {
		return ErrBankAccountRequired
	}
	return nil
}

// SuccessorAfterDeparture decides what happens to a team once the
// given member is gone. It returns the profile id of the new leader
// when leadership must transfer (earliest joiner wins, first found on
// ties), and deleteTeam when no members remain.
func SuccessorAfterDeparture(team models.Team, departingID string) (newLeaderID string, deleteTeam bool) {
	remaining := make([]models.TeamMember, 0, len(team.Members))
	for _, member := range team.Members {
		if member.ProfileID != departingID {
			remaining = append(remaining, member)
		}
	}

	if len(remaining) == 0 {
		return "", true
	}
	if team.LeaderID != departingID {
		return "", false
	}

	successor := remaining[0]
	for _, member := range remaining[1:] {
		if member.JoinedAt.Before(successor.JoinedAt) {
			successor = member
		}
	}
	return successor.ProfileID, false
}

// RankedMember is a member with its weekly progress and display rank.
type RankedMember struct {
	models.TeamMember
	Tier           string  `json:"tier"`
	WeeklyProgress int     `json:"weeklyProgress"`
	Percent        float64 `json:"percent"`
	Position       int     `json:"position"`
	RankLabel      string  `json:"rankLabel"`
}

// RankMembers orders members by weekly progress, highest first. The
// sort is stable so equal-progress members keep their input order.
func RankMembers(members []RankedMember) []RankedMember {
	ranked := make([]RankedMember, len(members))
	copy(ranked, members)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeeklyProgress > ranked[j].WeeklyProgress
	})

	for index := range ranked {
		ranked[index].Position = index + 1
		ranked[index].RankLabel = RankLabel(index + 1)
	}
	return ranked
}

// RankLabel maps a 1-based position to its display form: medals for
// the podium, an ordinal for everyone else.
func RankLabel(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%s place", ordinal(position))
	}
}

func ordinal(value int) string {
	suffix := "th"
	if value%100 < 11 || value%100 > 13 {
		switch value % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", value, suffix)
}
