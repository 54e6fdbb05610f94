package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles *ProfileRepository
	Workouts *WorkoutRepository
	Teams    *TeamRepository
	Votes    *VoteRepository
	Posts    *PostRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(database),
		Workouts: NewWorkoutRepository(database),
		Teams:    NewTeamRepository(database),
		Votes:    NewVoteRepository(database),
		Posts:    NewPostRepository(database),
	}
}
