package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (pc *ProgressController) Weekly(c *gin.Context) {
	report, err := pc.progress.Weekly(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly progress data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weekly":             report.Series,
		"workoutTypes":       report.WorkoutTypes,
		"nutritionBreakdown": report.NutritionBreakdown,
	})
}

func (pc *ProgressController) Monthly(c *gin.Context) {
	report, err := pc.progress.Monthly(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monthly progress data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monthly":            report.Series,
		"workoutTypes":       report.WorkoutTypes,
		"nutritionBreakdown": report.NutritionBreakdown,
	})
}
