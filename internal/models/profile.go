package models

import "time"

// Profile is the device-scoped identity everything else hangs off.
// Tier and total workout count are derived from workout entries on
// every load and are intentionally not stored here.
type Profile struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	ProfileImage string    `json:"profileImage"`
	BankAccount  string    `json:"bankAccount"`
	WeeklyGoal   int       `gorm:"not null;default:0" json:"weeklyGoal"`
	CreatedAt    time.Time `json:"createdAt"`
}

const DefaultProfileName = "나"

func (Profile) TableName() string { return "profiles" }
