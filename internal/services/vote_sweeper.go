package services

import (
	"context"
	"log"
	"time"
)

// VoteSweeper periodically settles expired removal votes so outcomes
// land even when nobody opens the team page. Resolution itself is
// idempotent, so the sweeper and the lazy on-load path can overlap
// safely.
type VoteSweeper struct {
	votes    *VoteService
	interval time.Duration
	location *time.Location
}

func NewVoteSweeper(votes *VoteService, interval time.Duration, location *time.Location) *VoteSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if location == nil {
		location = time.UTC
	}
	return &VoteSweeper{
		votes:    votes,
		interval: interval,
		location: location,
	}
}

func (sweeper *VoteSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(sweeper.interval)
	go func() {
		defer ticker.Stop()

		sweeper.run()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweeper.run()
			}
		}
	}()
}

func (sweeper *VoteSweeper) run() {
	now := time.Now().In(sweeper.location)
	settled, err := sweeper.votes.ResolveExpired(now)
	if err != nil {
		log.Printf("vote sweeper: resolve expired failed: %v", err)
		return
	}
	if settled > 0 {
		log.Printf("vote sweeper: settled %d expired vote(s)", settled)
	}
}
