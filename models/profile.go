package models

import "time"

// UserProfile is created empty at registration and filled in later from the
// profile screen, so every column except user_id is nullable.
type UserProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Age            *int      `json:"age"`
	Height         *float64  `json:"height"`
	Weight         *float64  `json:"weight"`
	FitnessGoal    *string   `json:"fitness_goal"`
	ActivityLevel  *string   `json:"activity_level"`
	TargetCalories *int      `json:"target_calories"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
