package services

import (
	"errors"
	"strings"

	"github.com/jaehyuncho/fitdiary/internal/models"
)

var (
	ErrVoteInProgress    = errors.New("removal vote already in progress")
	ErrTooFewMembers     = errors.New("too few members for a removal vote")
	ErrEmptyVoteReason   = errors.New("empty vote reason")
	ErrVoteCompleted     = errors.New("vote already completed")
	ErrInvalidVoteChoice = errors.New("invalid vote choice")
	ErrTargetNotMember   = errors.New("target is not a team member")
)

// ValidateVoteOpen checks the preconditions for opening a removal
// vote against a team member.
func ValidateVoteOpen(team models.Team, targetID string, reason string, initiatorID string) error {
	if len(team.Members) <= 1 {
		return ErrTooFewMembers
	}
	if _, ok := team.MemberByProfile(initiatorID); !ok {
		return ErrNotTeamMember
	}
	if _, ok := team.MemberByProfile(targetID); !ok {
		return ErrTargetNotMember
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyVoteReason
	}
	return nil
}

// ValidateVoteChoice accepts only the two ballot choices.
func ValidateVoteChoice(choice string) error {
	if choice != models.VoteChoiceAgree && choice != models.VoteChoiceDisagree {
		return ErrInvalidVoteChoice
	}
	return nil
}

// UpsertBallot records a voter's choice, replacing any earlier ballot
// by the same voter. The latest choice wins.
func UpsertBallot(vote models.RemovalVote, voterID string, choice string) models.RemovalVote {
	if index := vote.BallotByVoter(voterID); index >= 0 {
		vote.Ballots[index].Choice = choice
		return vote
	}
	vote.Ballots = append(vote.Ballots, models.VoteBallot{ProfileID: voterID, Choice: choice})
	return vote
}

// QuorumMet reports whether at least half of the team took part.
// Integer arithmetic keeps the 50% boundary exact.
func QuorumMet(ballotCount int, memberCount int) bool {
	if memberCount <= 0 {
		return false
	}
	return ballotCount*2 >= memberCount
}

// DecideOutcome settles an expired vote. Quorum failure and a tie (or
// a disagree majority) both leave membership alone; only a clear
// agree majority removes the target.
func DecideOutcome(vote models.RemovalVote, memberCount int) string {
	if !QuorumMet(len(vote.Ballots), memberCount) {
		return models.VoteOutcomeNoQuorum
	}
	agree, disagree := vote.Tally()
	if agree > disagree {
		return models.VoteOutcomeRemoved
	}
	return models.VoteOutcomeKept
}
