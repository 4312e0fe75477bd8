package main

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/purushotham2628/fitness-diet-app/config"
	"github.com/purushotham2628/fitness-diet-app/controllers"
	"github.com/purushotham2628/fitness-diet-app/routes"
	"github.com/purushotham2628/fitness-diet-app/services"
	"github.com/purushotham2628/fitness-diet-app/utils"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.L.Fatal("database init failed", zap.Error(err))
	}

	sessions := services.NewSessionService(db, cfg.SessionTTL)
	auth := services.NewAuthService(db)
	workouts := services.NewWorkoutService(db)
	meals := services.NewMealService(db)
	nutrition := services.NewNutritionService(cfg.NutritionixAppID, cfg.NutritionixAPIKey)
	community := services.NewCommunityService(db)
	profiles := services.NewProfileService(db)
	progress := services.NewProgressService(db)

	var mailer services.MailSender
	if cfg.SESEmail != "" {
		m, err := utils.NewMailer(context.Background(), cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			utils.L.Fatal("mailer init failed", zap.Error(err))
		}
		mailer = m
	}
	reports := services.NewReportService(db, mailer)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReportSchedule, func() {
		reports.Run(context.Background())
	}); err != nil {
		utils.L.Fatal("invalid report schedule", zap.String("spec", cfg.ReportSchedule), zap.Error(err))
	}
	if _, err := scheduler.AddFunc("@hourly", func() {
		if n, err := sessions.Sweep(context.Background()); err != nil {
			utils.L.Error("session sweep failed", zap.Error(err))
		} else if n > 0 {
			utils.L.Info("swept expired sessions", zap.Int64("count", n))
		}
	}); err != nil {
		utils.L.Fatal("session sweep schedule failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(auth, sessions),
		Workouts:  controllers.NewWorkoutController(workouts),
		Meals:     controllers.NewMealController(meals),
		Nutrition: controllers.NewNutritionController(nutrition),
		Dashboard: controllers.NewDashboardController(progress),
		Progress:  controllers.NewProgressController(progress),
		Community: controllers.NewCommunityController(community),
		Profile:   controllers.NewProfileController(profiles),
	}

	r := routes.SetupRouter(cfg, sessions, ctrl)

	utils.L.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.L.Fatal("server exited", zap.Error(err))
	}
}
