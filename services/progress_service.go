package services

import (
	"context"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

// ProgressService produces the dashboard aggregates and the dense per-day
// progress series the charts consume. Days without activity must still appear
// with zero values, so the series is built day by day in application code and
// the sparse per-day sums are overlaid on top.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type DashboardStats struct {
	TotalWorkouts           int64 `json:"totalWorkouts"`
	TotalCaloriesBurned     int64 `json:"totalCaloriesBurned"`
	TotalMeals              int64 `json:"totalMeals"`
	AverageCaloriesConsumed int   `json:"averageCaloriesConsumed"`
}

type ProgressPoint struct {
	Date             string `json:"date"`
	CaloriesBurned   int    `json:"caloriesBurned"`
	CaloriesConsumed int    `json:"caloriesConsumed"`
}

type WorkoutTypeCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type NutrientValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ProgressReport struct {
	Series             []ProgressPoint    `json:"-"`
	WorkoutTypes       []WorkoutTypeCount `json:"workoutTypes"`
	NutritionBreakdown []NutrientValue    `json:"nutritionBreakdown"`
}

func (s *ProgressService) DashboardStats(ctx context.Context, userID uint) (*DashboardStats, error) {
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

	type mealAgg struct {
		Count       int64
		AvgCalories float64
	}
	var m mealAgg
	err = s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Select("COUNT(*) AS count, COALESCE(AVG(calories), 0) AS avg_calories").
		Where("user_id = ?", userID).
		Scan(&m).Error
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalWorkouts:           w.Count,
		TotalCaloriesBurned:     w.TotalCalories,
		TotalMeals:              m.Count,
		AverageCaloriesConsumed: int(math.Round(m.AvgCalories)),
	}, nil
}

// WeeklySeries is the dense trailing-7-day series used by the dashboard chart.
func (s *ProgressService) WeeklySeries(ctx context.Context, userID uint) ([]ProgressPoint, error) {
	return s.denseSeries(ctx, userID, 7)
}

// Weekly adds the workout-type distribution and the averaged macro breakdown
// to the 7-day series.
func (s *ProgressService) Weekly(ctx context.Context, userID uint) (*ProgressReport, error) {
	return s.report(ctx, userID, 7)
}

// Monthly covers the trailing 30 days with the dense series bucketed into
// week-aligned groups (keyed by each day's Monday) before summing.
func (s *ProgressService) Monthly(ctx context.Context, userID uint) (*ProgressReport, error) {
	report, err := s.report(ctx, userID, 30)
	if err != nil {
		return nil, err
	}
	report.Series = bucketByWeek(report.Series)
	return report, nil
}

func (s *ProgressService) report(ctx context.Context, userID uint, days int) (*ProgressReport, error) {
	series, err := s.denseSeries(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	since := windowStart(days)
	report := &ProgressReport{Series: series}

	err = s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Select("exercise_name AS name, COUNT(*) AS count").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("exercise_name").
		Scan(&report.WorkoutTypes).Error
	if err != nil {
		return nil, err
	}
	if report.WorkoutTypes == nil {
		report.WorkoutTypes = []WorkoutTypeCount{}
	}

	type macroAgg struct {
		Protein float64
		Carbs   float64
		Fat     float64
		Fiber   float64
	}
	var macros macroAgg
	err = s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Select(`COALESCE(AVG(protein), 0) AS protein, COALESCE(AVG(carbs), 0) AS carbs,
			COALESCE(AVG(fat), 0) AS fat, COALESCE(AVG(fiber), 0) AS fiber`).
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&macros).Error
	if err != nil {
		return nil, err
	}
	report.NutritionBreakdown = []NutrientValue{
		{Name: "Protein", Value: int(math.Round(macros.Protein))},
		{Name: "Carbs", Value: int(math.Round(macros.Carbs))},
		{Name: "Fat", Value: int(math.Round(macros.Fat))},
		{Name: "Fiber", Value: int(math.Round(macros.Fiber))},
	}

	return report, nil
}

// denseSeries returns one entry per calendar day in [today-days, today-1],
// zero-filled where nothing was logged.
func (s *ProgressService) denseSeries(ctx context.Context, userID uint, days int) ([]ProgressPoint, error) {
	since := windowStart(days)

	type daySum struct {
		Date  string
		Total int
	}

	var burned []daySum
	err := s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Select("date, COALESCE(SUM(calories_burned), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("date").
		Scan(&burned).Error
	if err != nil {
		return nil, err
	}

	var consumed []daySum
	err = s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Select("date, COALESCE(SUM(calories), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("date").
		Scan(&consumed).Error
	if err != nil {
		return nil, err
	}

	burnedByDay := map[string]int{}
	for _, row := range burned {
		burnedByDay[row.Date] = row.Total
	}
	consumedByDay := map[string]int{}
	for _, row := range consumed {
		consumedByDay[row.Date] = row.Total
	}

	start, _ := time.Parse("2006-01-02", since)
	series := make([]ProgressPoint, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, ProgressPoint{
			Date:             key,
			CaloriesBurned:   burnedByDay[key],
			CaloriesConsumed: consumedByDay[key],
		})
	}
	return series, nil
}

// bucketByWeek sums a daily series into week buckets keyed by each day's
// Monday, preserving the dense-series contract for weeks with no activity.
func bucketByWeek(series []ProgressPoint) []ProgressPoint {
	byWeek := map[string]*ProgressPoint{}
	for _, p := range series {
		day, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}
		offset := (int(day.Weekday()) + 6) % 7 // days since Monday
		week := day.AddDate(0, 0, -offset).Format("2006-01-02")

		bucket, ok := byWeek[week]
		if !ok {
			bucket = &ProgressPoint{Date: week}
			byWeek[week] = bucket
		}
		bucket.CaloriesBurned += p.CaloriesBurned
		bucket.CaloriesConsumed += p.CaloriesConsumed
	}

	weeks := make([]ProgressPoint, 0, len(byWeek))
	for _, bucket := range byWeek {
		weeks = append(weeks, *bucket)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Date < weeks[j].Date })
	return weeks
}

func windowStart(days int) string {
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}
