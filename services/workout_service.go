package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type WorkoutInput struct {
	ExerciseName   string  `json:"exercise_name"`
	Duration       int     `json:"duration"`
	CaloriesBurned int     `json:"calories_burned"`
	Notes          *string `json:"notes"`
	Date           string  `json:"date"`
}

func (s *WorkoutService) List(ctx context.Context, userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) ListRecent(ctx context.Context, userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(5).
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Create(ctx context.Context, userID uint, in WorkoutInput) (*models.Workout, error) {
	if in.ExerciseName == "" || in.Duration <= 0 || in.CaloriesBurned <= 0 {
		return nil, ErrFieldsRequired
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	workout := models.Workout{
		UserID:         userID,
		ExerciseName:   in.ExerciseName,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
		Date:           date,
	}
	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout only when it belongs to userID. A row owned by
// someone else looks identical to a missing one.
func (s *WorkoutService) Delete(ctx context.Context, userID, workoutID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
