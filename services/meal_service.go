package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	MealType string  `json:"meal_type"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Date     string  `json:"date"`
}

// ListToday returns the meals logged for the server's current calendar date.
// The diet screen only ever shows "today", so the date filter lives here and
// not in the handler.
func (s *MealService) ListToday(ctx context.Context, userID uint) ([]models.Meal, error) {
	today := time.Now().Format("2006-01-02")
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecent(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(5).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Create(ctx context.Context, userID uint, in MealInput) (*models.Meal, error) {
	if in.FoodName == "" || in.Quantity <= 0 || in.MealType == "" || in.Calories <= 0 {
		return nil, ErrFieldsRequired
	}
	if !models.ValidMealType(in.MealType) {
		return nil, ErrInvalidMealType
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	meal := models.Meal{
		UserID:   userID,
		FoodName: in.FoodName,
		Quantity: in.Quantity,
		MealType: in.MealType,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Fiber:    in.Fiber,
		Date:     date,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
