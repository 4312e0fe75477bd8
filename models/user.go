package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Profile  *UserProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Workouts []Workout    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Meals    []Meal       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
