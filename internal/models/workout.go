package models

import "time"

// WorkoutEntry is one logged workout. The date is fixed at creation
// and entries are never deleted by the application.
type WorkoutEntry struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	ProfileID       string    `gorm:"not null;index" json:"profileId"`
	ProfileName     string    `gorm:"not null" json:"profileName"`
	Date            time.Time `gorm:"type:date;not null;index" json:"date"`
	ExerciseName    string    `gorm:"not null" json:"exerciseName"`
	Comment         string    `json:"comment"`
	DurationMinutes int       `gorm:"not null;default:0" json:"durationMinutes,omitempty"`
	ImageRef        string    `gorm:"not null" json:"imageRef"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (WorkoutEntry) TableName() string { return "workout_entries" }
