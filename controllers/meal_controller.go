package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (mc *MealController) ListToday(c *gin.Context) {
	meals, err := mc.meals.ListToday(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) ListRecent(c *gin.Context) {
	meals, err := mc.meals.ListRecent(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) Create(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food name, quantity, meal type, and calories are required"})
		return
	}

	meal, err := mc.meals.Create(c.Request.Context(), c.GetUint("userID"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Food name, quantity, meal type, and calories are required"})
		case errors.Is(err, services.ErrInvalidMealType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add meal"})
		}
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	err = mc.meals.Delete(c.Request.Context(), c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
