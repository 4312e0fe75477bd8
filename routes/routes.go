package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/config"
	"github.com/purushotham2628/fitness-diet-app/controllers"
	"github.com/purushotham2628/fitness-diet-app/middlewares"
	"github.com/purushotham2628/fitness-diet-app/services"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Workouts  *controllers.WorkoutController
	Meals     *controllers.MealController
	Nutrition *controllers.NutritionController
	Dashboard *controllers.DashboardController
	Progress  *controllers.ProgressController
	Community *controllers.CommunityController
	Profile   *controllers.ProfileController
}

func SetupRouter(cfg config.Config, sessions *services.SessionService, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// In production the client build is served from this same origin, so the
	// CORS layer is only needed for the dev server.
	if cfg.Env != "production" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	api := r.Group("/api")

	// Public routes. Credential endpoints are rate limited per IP.
	api.GET("/health", controllers.Health)
	api.POST("/register", middlewares.RateLimit(1, 5), ctrl.Auth.Register)
	api.POST("/login", middlewares.RateLimit(1, 5), ctrl.Auth.Login)
	api.POST("/logout", ctrl.Auth.Logout)

	authed := api.Group("")
	authed.Use(middlewares.AuthRequired(sessions))
	{
		authed.GET("/user", ctrl.Auth.CurrentUser)

		authed.GET("/workouts", ctrl.Workouts.List)
		authed.GET("/workouts/recent", ctrl.Workouts.ListRecent)
		authed.POST("/workouts", ctrl.Workouts.Create)
		authed.DELETE("/workouts/:id", ctrl.Workouts.Delete)

		authed.GET("/meals", ctrl.Meals.ListToday)
		authed.GET("/meals/recent", ctrl.Meals.ListRecent)
		authed.POST("/meals", ctrl.Meals.Create)
		authed.DELETE("/meals/:id", ctrl.Meals.Delete)

		authed.GET("/nutrition/search", ctrl.Nutrition.Search)

		authed.GET("/dashboard/stats", ctrl.Dashboard.Stats)
		authed.GET("/dashboard/weekly-progress", ctrl.Dashboard.WeeklyProgress)

		authed.GET("/progress/weekly", ctrl.Progress.Weekly)
		authed.GET("/progress/monthly", ctrl.Progress.Monthly)

		authed.GET("/community/posts", ctrl.Community.ListPosts)
		authed.POST("/community/posts", ctrl.Community.CreatePost)
		authed.DELETE("/community/posts/:id", ctrl.Community.DeletePost)
		authed.POST("/community/posts/:id/like", ctrl.Community.ToggleLike)

		authed.GET("/profile", ctrl.Profile.Get)
		authed.PUT("/profile", ctrl.Profile.Update)
		authed.GET("/profile/stats", ctrl.Profile.Stats)
	}

	// Everything outside /api serves the SPA build so client-side routing
	// works on refresh.
	r.Static("/static", filepath.Join(cfg.StaticDir, "static"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}
