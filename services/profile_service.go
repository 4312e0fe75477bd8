package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type ProfileInput struct {
	Age            *int     `json:"age"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	FitnessGoal    *string  `json:"fitness_goal"`
	ActivityLevel  *string  `json:"activity_level"`
	TargetCalories *int     `json:"target_calories"`
}

type ProfileStats struct {
	TotalWorkouts       int64      `json:"totalWorkouts"`
	TotalCaloriesBurned int64      `json:"totalCaloriesBurned"`
	TotalMeals          int64      `json:"totalMeals"`
	MemberSince         *time.Time `json:"memberSince"`
}

// Get returns the profile, creating an empty one on the fly. Registration
// already creates the row, so this only fires for accounts that predate it.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
		err = s.db.WithContext(ctx).Create(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update overwrites the whole profile row; the form always submits every field.
func (s *ProfileService) Update(ctx context.Context, userID uint, in ProfileInput) error {
	res := s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"age":             in.Age,
			"height":          in.Height,
			"weight":          in.Weight,
			"fitness_goal":    in.FitnessGoal,
			"activity_level":  in.ActivityLevel,
			"target_calories": in.TargetCalories,
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProfileService) Stats(ctx context.Context, userID uint) (*ProfileStats, error) {
	stats := &ProfileStats{}

	type workoutAgg struct {
		Count         int64
		TotalCalories int64
	}
	var w workoutAgg
	err := s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Select("COUNT(*) AS count, COALESCE(SUM(calories_burned), 0) AS total_calories").
		Where("user_id = ?", userID).
		Scan(&w).Error
	if err != nil {
		return nil, err
	}
	stats.TotalWorkouts = w.Count
	stats.TotalCaloriesBurned = w.TotalCalories

	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalMeals).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err == nil {
		stats.MemberSince = &user.CreatedAt
	}
	return stats, nil
}
