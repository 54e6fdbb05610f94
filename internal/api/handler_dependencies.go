package api

import (
	"github.com/jaehyuncho/fitdiary/internal/db"
	"github.com/jaehyuncho/fitdiary/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles, handler.repositories.Workouts, handler.repositories.Teams, handler.repositories.Teams, handler.location)
	handler.workoutService = services.NewWorkoutService(handler.repositories.Workouts, handler.location)
	handler.teamService = services.NewTeamService(handler.repositories.Teams, handler.repositories.Workouts, handler.location)
	handler.voteService = services.NewVoteService(handler.repositories.Votes, handler.repositories.Teams)
	handler.communityService = services.NewCommunityService(handler.repositories.Posts)
	handler.statsService = services.NewStatsService(handler.repositories.Workouts, handler.location)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
