package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Fitness & Diet Tracker API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
