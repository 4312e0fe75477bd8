package models

import "time"

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type Meal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FoodName  string    `gorm:"not null" json:"food_name"`
	Quantity  float64   `gorm:"not null;default:1" json:"quantity"`
	MealType  string    `gorm:"not null" json:"meal_type"`
	Calories  int       `gorm:"not null" json:"calories"`
	Protein   float64   `gorm:"default:0" json:"protein"`
	Carbs     float64   `gorm:"default:0" json:"carbs"`
	Fat       float64   `gorm:"default:0" json:"fat"`
	Fiber     float64   `gorm:"default:0" json:"fiber"`
	Date      string    `gorm:"type:date;index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
