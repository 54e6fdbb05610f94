package services

import (
	"sort"
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
	"gorm.io/gorm"
)

// In-memory stores mirroring the repository semantics in internal/db,
// including gorm.ErrRecordNotFound for missing rows.

type fakeTeamStore struct {
	teams map[string]*models.Team
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: make(map[string]*models.Team)}
}

func (store *fakeTeamStore) ListAll() ([]models.Team, error) {
	teams := make([]models.Team, 0, len(store.teams))
	for _, team := range store.teams {
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].CreatedAt.After(teams[j].CreatedAt) })
	return teams, nil
}

func (store *fakeTeamStore) FindByID(teamID string) (models.Team, error) {
	team, ok := store.teams[teamID]
	if !ok {
		return models.Team{}, gorm.ErrRecordNotFound
	}
	return *team, nil
}

func (store *fakeTeamStore) FindByProfile(profileID string) (models.Team, bool, error) {
	for _, team := range store.teams {
		if _, ok := team.MemberByProfile(profileID); ok {
			return *team, true, nil
		}
	}
	return models.Team{}, false, nil
}

func (store *fakeTeamStore) Create(team *models.Team) error {
	clone := *team
	store.teams[team.ID] = &clone
	return nil
}

func (store *fakeTeamStore) UpdateByID(teamID string, updates map[string]any) error {
	team, ok := store.teams[teamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		team.Name = name
	}
	if goal, ok := updates["weekly_goal"].(int); ok {
		team.WeeklyGoal = goal
	}
	if hash, ok := updates["password_hash"].(string); ok {
		team.PasswordHash = hash
	}
	return nil
}

func (store *fakeTeamStore) AddMember(member *models.TeamMember) error {
	team, ok := store.teams[member.TeamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	team.Members = append(team.Members, *member)
	return nil
}

func (store *fakeTeamStore) ApplyDeparture(teamID string, profileID string, newLeaderID string, deleteTeam bool) error {
	team, ok := store.teams[teamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	remaining := make([]models.TeamMember, 0, len(team.Members))
	for _, member := range team.Members {
		if member.ProfileID != profileID {
			remaining = append(remaining, member)
		}
	}
	team.Members = remaining

	if deleteTeam {
		delete(store.teams, teamID)
		return nil
	}
	if newLeaderID != "" {
		team.LeaderID = newLeaderID
	}
	return nil
}

func (store *fakeTeamStore) SyncMemberProfile(profileID string, name string, profileImage string) error {
	for _, team := range store.teams {
		for index := range team.Members {
			if team.Members[index].ProfileID == profileID {
				team.Members[index].Name = name
				team.Members[index].ProfileImage = profileImage
			}
		}
	}
	return nil
}

type fakeWorkoutStore struct {
	entries []models.WorkoutEntry
}

func (store *fakeWorkoutStore) FindByID(entryID string) (models.WorkoutEntry, error) {
	for _, entry := range store.entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return models.WorkoutEntry{}, gorm.ErrRecordNotFound
}

func (store *fakeWorkoutStore) Create(entry *models.WorkoutEntry) error {
	store.entries = append(store.entries, *entry)
	return nil
}

func (store *fakeWorkoutStore) ListByProfile(profileID string) ([]models.WorkoutEntry, error) {
	matched := make([]models.WorkoutEntry, 0)
	for _, entry := range store.entries {
		if entry.ProfileID == profileID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (store *fakeWorkoutStore) ListByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) ([]models.WorkoutEntry, error) {
	matched := make([]models.WorkoutEntry, 0)
	for _, entry := range store.entries {
		if entry.ProfileID == profileID && !entry.Date.Before(fromStart) && entry.Date.Before(toEnd) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (store *fakeWorkoutStore) CountByProfile(profileID string) (int64, error) {
	entries, _ := store.ListByProfile(profileID)
	return int64(len(entries)), nil
}

func (store *fakeWorkoutStore) CountByProfileRange(profileID string, fromStart time.Time, toEnd time.Time) (int64, error) {
	entries, _ := store.ListByProfileRange(profileID, fromStart, toEnd)
	return int64(len(entries)), nil
}

type fakeVoteStore struct {
	votes map[string]*models.RemovalVote
}

func newFakeVoteStore() *fakeVoteStore {
	return &fakeVoteStore{votes: make(map[string]*models.RemovalVote)}
}

func (store *fakeVoteStore) FindByID(voteID string) (models.RemovalVote, error) {
	vote, ok := store.votes[voteID]
	if !ok {
		return models.RemovalVote{}, gorm.ErrRecordNotFound
	}
	return *vote, nil
}

func (store *fakeVoteStore) FindActiveByTeam(teamID string) (models.RemovalVote, bool, error) {
	for _, vote := range store.votes {
		if vote.TeamID == teamID && vote.Status == models.VoteStatusActive {
			return *vote, true, nil
		}
	}
	return models.RemovalVote{}, false, nil
}

func (store *fakeVoteStore) ListExpiredActive(now time.Time) ([]models.RemovalVote, error) {
	expired := make([]models.RemovalVote, 0)
	for _, vote := range store.votes {
		if vote.Status == models.VoteStatusActive && !vote.EndDate.After(now) {
			expired = append(expired, *vote)
		}
	}
	return expired, nil
}

func (store *fakeVoteStore) Create(vote *models.RemovalVote) error {
	clone := *vote
	store.votes[vote.ID] = &clone
	return nil
}

func (store *fakeVoteStore) Save(vote *models.RemovalVote) error {
	clone := *vote
	store.votes[vote.ID] = &clone
	return nil
}

type fakeProfileStore struct {
	profiles map[string]*models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]*models.Profile)}
}

func (store *fakeProfileStore) FindByID(profileID string) (models.Profile, error) {
	profile, ok := store.profiles[profileID]
	if !ok {
		return models.Profile{}, gorm.ErrRecordNotFound
	}
	return *profile, nil
}

func (store *fakeProfileStore) Create(profile *models.Profile) error {
	clone := *profile
	store.profiles[profile.ID] = &clone
	return nil
}

func (store *fakeProfileStore) UpdateByID(profileID string, updates map[string]any) error {
	profile, ok := store.profiles[profileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		profile.Name = name
	}
	if image, ok := updates["profile_image"].(string); ok {
		profile.ProfileImage = image
	}
	if account, ok := updates["bank_account"].(string); ok {
		profile.BankAccount = account
	}
	if goal, ok := updates["weekly_goal"].(int); ok {
		profile.WeeklyGoal = goal
	}
	return nil
}

type fakePostStore struct {
	posts map[string]*models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[string]*models.Post)}
}

func (store *fakePostStore) ListNewestFirst() ([]models.Post, error) {
	posts := make([]models.Post, 0, len(store.posts))
	for _, post := range store.posts {
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (store *fakePostStore) FindByID(postID string) (models.Post, error) {
	post, ok := store.posts[postID]
	if !ok {
		return models.Post{}, gorm.ErrRecordNotFound
	}
	return *post, nil
}

func (store *fakePostStore) Create(post *models.Post) error {
	clone := *post
	store.posts[post.ID] = &clone
	return nil
}

func (store *fakePostStore) Save(post *models.Post) error {
	clone := *post
	store.posts[post.ID] = &clone
	return nil
}

func (store *fakePostStore) Delete(postID string) error {
	delete(store.posts, postID)
	return nil
}
