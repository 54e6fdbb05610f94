package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

type VoteStore interface {
	FindByID(voteID string) (models.RemovalVote, error)
	FindActiveByTeam(teamID string) (models.RemovalVote, bool, error)
	ListExpiredActive(now time.Time) ([]models.RemovalVote, error)
	Create(vote *models.RemovalVote) error
	Save(vote *models.RemovalVote) error
}

type VoteService struct {
	votes VoteStore
	teams TeamStore
}

func NewVoteService(votes VoteStore, teams TeamStore) *VoteService {
	return &VoteService{
		votes: votes,
		teams: teams,
	}
}

// OpenVote starts a 24-hour removal poll. At most one vote per team
// may be active at a time.
func (service *VoteService) OpenVote(teamID string, initiatorID string, targetID string, reason string, now time.Time) (models.RemovalVote, error) {
	team, err := service.teams.FindByID(teamID)
	if err != nil {
		return models.RemovalVote{}, err
	}
	if err := ValidateVoteOpen(team, targetID, reason, initiatorID); err != nil {
		return models.RemovalVote{}, err
	}

	if existing, found, err := service.votes.FindActiveByTeam(teamID); err != nil {
		return models.RemovalVote{}, err
	} else if found {
		// An expired leftover is settled first; a genuinely open vote
		// blocks the new one.
		if now.Before(existing.EndDate) {
			return models.RemovalVote{}, ErrVoteInProgress
		}
		if _, err := service.resolve(existing, now); err != nil {
			return models.RemovalVote{}, err
		}
	}

	target, _ := team.MemberByProfile(targetID)
	vote := models.RemovalVote{
		ID:         uuid.NewString(),
		TeamID:     teamID,
		TargetID:   targetID,
		TargetName: target.Name,
		Reason:     strings.TrimSpace(reason),
		CreatedBy:  initiatorID,
		CreatedAt:  now,
		EndDate:    now.Add(models.VoteDuration),
		Ballots:    []models.VoteBallot{},
		Status:     models.VoteStatusActive,
		Outcome:    models.VoteOutcomePending,
	}
	if err := service.votes.Create(&vote); err != nil {
		return models.RemovalVote{}, err
	}
	return vote, nil
}

// CastBallot upserts the voter's choice. A vote past its end date is
// settled first and then refuses the ballot.
func (service *VoteService) CastBallot(voteID string, voterID string, choice string, now time.Time) (models.RemovalVote, error) {
	if err := ValidateVoteChoice(choice); err != nil {
		return models.RemovalVote{}, err
	}

	vote, err := service.votes.FindByID(voteID)
	if err != nil {
		return models.RemovalVote{}, err
	}
	if !vote.IsActive() {
		return models.RemovalVote{}, ErrVoteCompleted
	}
	if !now.Before(vote.EndDate) {
		if _, err := service.resolve(vote, now); err != nil {
			return models.RemovalVote{}, err
		}
		return models.RemovalVote{}, ErrVoteCompleted
	}

	team, err := service.teams.FindByID(vote.TeamID)
	if err != nil {
		return models.RemovalVote{}, err
	}
	if _, ok := team.MemberByProfile(voterID); !ok {
		return models.RemovalVote{}, ErrNotTeamMember
	}

	vote = UpsertBallot(vote, voterID, choice)
	if err := service.votes.Save(&vote); err != nil {
		return models.RemovalVote{}, err
	}
	return vote, nil
}

// ActiveVoteForTeam loads the team's current vote, settling it on the
// spot if its end date has passed. This is the lazy half of the pull
// model; the sweeper covers teams nobody is looking at.
func (service *VoteService) ActiveVoteForTeam(teamID string, now time.Time) (models.RemovalVote, bool, error) {
	vote, found, err := service.votes.FindActiveByTeam(teamID)
	if err != nil || !found {
		return models.RemovalVote{}, false, err
	}
	if !now.Before(vote.EndDate) {
		settled, err := service.resolve(vote, now)
		if err != nil {
			return models.RemovalVote{}, false, err
		}
		return settled, true, nil
	}
	return vote, true, nil
}

// ResolveExpired settles every active vote whose end date has passed.
// Used by the background sweeper.
func (service *VoteService) ResolveExpired(now time.Time) (int, error) {
	expired, err := service.votes.ListExpiredActive(now)
	if err != nil {
		return 0, err
	}
	for _, vote := range expired {
		if _, err := service.resolve(vote, now); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}

// resolve computes a vote's one and only outcome. Resolving a vote
// that is already completed, or not yet due, is a no-op.
func (service *VoteService) resolve(vote models.RemovalVote, now time.Time) (models.RemovalVote, error) {
	if !vote.IsActive() || now.Before(vote.EndDate) {
		return vote, nil
	}

	team, err := service.teams.FindByID(vote.TeamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Team disbanded while the vote ran; nothing left to remove.
		vote.Status = models.VoteStatusCompleted
		vote.Outcome = models.VoteOutcomeKept
		return vote, service.votes.Save(&vote)
	}
	if err != nil {
		return models.RemovalVote{}, err
	}

	outcome := DecideOutcome(vote, len(team.Members))
	if outcome == models.VoteOutcomeRemoved {
		if _, stillMember := team.MemberByProfile(vote.TargetID); stillMember {
			newLeaderID, deleteTeam := SuccessorAfterDeparture(team, vote.TargetID)
			if err := service.teams.ApplyDeparture(team.ID, vote.TargetID, newLeaderID, deleteTeam); err != nil {
				return models.RemovalVote{}, err
			}
		}
	}

	vote.Status = models.VoteStatusCompleted
	vote.Outcome = outcome
	if err := service.votes.Save(&vote); err != nil {
		return models.RemovalVote{}, err
	}
	return vote, nil
}
