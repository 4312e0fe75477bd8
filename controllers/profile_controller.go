package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

func (pc *ProfileController) Get(c *gin.Context) {
	profile, err := pc.profiles.Get(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) Update(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile data"})
		return
	}

	err := pc.profiles.Update(c.Request.Context(), c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (pc *ProfileController) Stats(c *gin.Context) {
	stats, err := pc.profiles.Stats(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
