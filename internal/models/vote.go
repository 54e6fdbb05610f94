package models

import "time"

const (
	VoteStatusActive    = "active"
	VoteStatusCompleted = "completed"

	VoteChoiceAgree    = "agree"
	VoteChoiceDisagree = "disagree"

	VoteOutcomePending  = "pending"
	VoteOutcomeRemoved  = "removed"
	VoteOutcomeKept     = "kept"
	VoteOutcomeNoQuorum = "no_quorum"
)

// VoteBallot is one member's current choice. A voter has at most one
// ballot per vote; recasting replaces the earlier one.
type VoteBallot struct {
	ProfileID string `json:"profileId"`
	Choice    string `json:"choice"`
}

// RemovalVote is a 24-hour poll over a team's members about expelling
// one of them. It moves from active to completed exactly once; the
// outcome records how it was settled.
type RemovalVote struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	TeamID     string       `gorm:"not null;index" json:"teamId"`
	TargetID   string       `gorm:"not null" json:"targetId"`
	TargetName string       `gorm:"not null" json:"targetName"`
	Reason     string       `gorm:"not null" json:"reason"`
	CreatedBy  string       `gorm:"not null" json:"createdBy"`
	CreatedAt  time.Time    `gorm:"not null" json:"createdAt"`
	EndDate    time.Time    `gorm:"not null" json:"endDate"`
	Ballots    []VoteBallot `gorm:"serializer:json" json:"ballots"`
	Status     string       `gorm:"not null;default:active" json:"status"`
	Outcome    string       `gorm:"not null;default:pending" json:"outcome"`
}

func (RemovalVote) TableName() string { return "removal_votes" }

// VoteDuration is how long a removal vote stays open.
const VoteDuration = 24 * time.Hour

func (vote RemovalVote) IsActive() bool { return vote.Status == VoteStatusActive }

// BallotByVoter returns the index of the voter's ballot, or -1.
func (vote RemovalVote) BallotByVoter(profileID string) int {
	for index, ballot := range vote.Ballots {
		if ballot.ProfileID == profileID {
			return index
		}
	}
	return -1
}

// Tally counts agree and disagree ballots.
func (vote RemovalVote) Tally() (agree int, disagree int) {
	for _, ballot := range vote.Ballots {
		switch ballot.Choice {
		case VoteChoiceAgree:
			agree++
		case VoteChoiceDisagree:
			disagree++
		}
	}
	return agree, disagree
}
