package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type DashboardController struct {
	progress *services.ProgressService
}

func NewDashboardController(progress *services.ProgressService) *DashboardController {
	return &DashboardController{progress: progress}
}

func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.progress.DashboardStats(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dc *DashboardController) WeeklyProgress(c *gin.Context) {
	series, err := dc.progress.WeeklySeries(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly progress"})
		return
	}
	c.JSON(http.StatusOK, series)
}
