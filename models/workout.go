package models

import "time"

// Workout dates are stored as YYYY-MM-DD strings so range filters compare the
// same way the charts group them.
type Workout struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	ExerciseName   string    `gorm:"not null" json:"exercise_name"`
	Duration       int       `gorm:"not null" json:"duration"`
	CaloriesBurned int       `gorm:"not null" json:"calories_burned"`
	Notes          *string   `json:"notes"`
	Date           string    `gorm:"type:date;index" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}
