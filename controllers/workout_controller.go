package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

func (wc *WorkoutController) List(c *gin.Context) {
	workouts, err := wc.workouts.List(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (wc *WorkoutController) ListRecent(c *gin.Context) {
	workouts, err := wc.workouts.ListRecent(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent workouts"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (wc *WorkoutController) Create(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exercise name, duration, and calories burned are required"})
		return
	}

	workout, err := wc.workouts.Create(c.Request.Context(), c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, services.ErrFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Exercise name, duration, and calories burned are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add workout"})
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	err = wc.workouts.Delete(c.Request.Context(), c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
