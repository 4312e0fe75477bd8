package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (nc *NutritionController) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	foods := nc.nutrition.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
