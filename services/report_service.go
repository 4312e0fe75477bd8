package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
	"github.com/purushotham2628/fitness-diet-app/utils"
)

// MailSender is what the report job needs from the mailer.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ReportService runs the weekly summary job: one mail per user with any
// activity in the trailing 7 days. Users are processed sequentially and a
// failed send never stops the run.
type ReportService struct {
	db     *gorm.DB
	mailer MailSender
}

func NewReportService(db *gorm.DB, mailer MailSender) *ReportService {
	return &ReportService{db: db, mailer: mailer}
}

type weeklyStats struct {
	WorkoutCount  int64
	TotalCalories int64
	MealCount     int64
	AvgCalories   float64
}

// Run executes one pass over all users. Returns how many reports were sent.
func (s *ReportService) Run(ctx context.Context) int {
	utils.L.Info("running weekly fitness report job")

	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		utils.L.Error("weekly report: failed to list users", zap.Error(err))
		return 0
	}

	sent := 0
	for _, user := range users {
		stats, err := s.userWeeklyStats(ctx, user.ID)
		if err != nil {
			utils.L.Error("weekly report: stats query failed",
				zap.Uint("user_id", user.ID), zap.Error(err))
			continue
		}

		// Nothing logged this week, nothing to report.
		if stats.WorkoutCount == 0 && stats.MealCount == 0 {
			continue
		}

		if s.mailer == nil {
			utils.L.Info("weekly report: mail not configured, skipping send",
				zap.String("email", user.Email))
			continue
		}

		subject := fmt.Sprintf("Your Weekly Fitness Report - %s", time.Now().Format("1/2/2006"))
		if err := s.mailer.Send(ctx, user.Email, subject, reportHTML(user.Username, stats)); err != nil {
			utils.L.Error("weekly report: send failed",
				zap.String("email", user.Email), zap.Error(err))
			continue
		}
		utils.L.Info("weekly report sent", zap.String("email", user.Email))
		sent++
	}

	utils.L.Info("weekly fitness report job completed", zap.Int("sent", sent))
	return sent
}

func (s *ReportService) userWeeklyStats(ctx context.Context, userID uint) (weeklyStats, error) {
	since := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	var stats weeklyStats

	type workoutAgg struct {
		Count         int64
		TotalCalories int64
	}
	var w workoutAgg
	err := s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Select("COUNT(*) AS count, COALESCE(SUM(calories_burned), 0) AS total_calories").
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&w).Error
	if err != nil {
		return stats, err
	}
	stats.WorkoutCount = w.Count
	stats.TotalCalories = w.TotalCalories

	type mealAgg struct {
		Count       int64
		AvgCalories float64
	}
	var m mealAgg
	err = s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Select("COUNT(*) AS count, COALESCE(AVG(calories), 0) AS avg_calories").
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&m).Error
	if err != nil {
		return stats, err
	}
	stats.MealCount = m.Count
	stats.AvgCalories = m.AvgCalories

	return stats, nil
}

func reportHTML(username string, stats weeklyStats) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h1 style="color: #667eea;">Your Weekly Fitness Report</h1>
      <p>Hi %s,</p>
      <p>Here's your fitness summary for the past week:</p>
      <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0;">
        <h2 style="color: #333;">This Week's Stats</h2>
        <ul style="list-style: none; padding: 0;">
          <li style="margin: 10px 0;"><strong>Workouts Completed:</strong> %d</li>
          <li style="margin: 10px 0;"><strong>Total Calories Burned:</strong> %d</li>
          <li style="margin: 10px 0;"><strong>Meals Logged:</strong> %d</li>
          <li style="margin: 10px 0;"><strong>Average Daily Calories:</strong> %d</li>
        </ul>
      </div>
      <p>Keep up the excellent work, and we'll see you in the app!</p>
      <p>Best regards,<br/>Your Fitness &amp; Diet Tracker Team</p>
    </div>`,
		username, stats.WorkoutCount, stats.TotalCalories, stats.MealCount,
		int(math.Round(stats.AvgCalories)))
}
