package api

type profileInput struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
	BankAccount  string `json:"bankAccount"`
	WeeklyGoal   int    `json:"weeklyGoal"`
}

type workoutInput struct {
	ExerciseName    string `json:"exerciseName"`
	Comment         string `json:"comment"`
	DurationMinutes int    `json:"durationMinutes"`
	ImageRef        string `json:"imageRef"`
}

type teamCreateInput struct {
	Name       string `json:"name"`
	WeeklyGoal int    `json:"weeklyGoal"`
	Password   string `json:"password"`
}

type teamEditInput struct {
	Name       string  `json:"name"`
	WeeklyGoal int     `json:"weeklyGoal"`
	Password   *string `json:"password"`
}

type teamJoinInput struct {
	Password string `json:"password"`
}

type voteOpenInput struct {
	TargetID string `json:"targetId"`
	Reason   string `json:"reason"`
}

type ballotInput struct {
	Choice string `json:"choice"`
}

type postInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentInput struct {
	Content string `json:"content"`
}
