package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/purushotham2628/fitness-diet-app/middlewares"
	"github.com/purushotham2628/fitness-diet-app/services"
	"github.com/purushotham2628/fitness-diet-app/utils"
)

type AuthController struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionService) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		case errors.Is(err, services.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		default:
			utils.L.Error("registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	if err := ac.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			utils.L.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	if err := ac.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	token, _ := c.Cookie(middlewares.SessionCookie)
	if err := ac.sessions.Destroy(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (ac *AuthController) CurrentUser(c *gin.Context) {
	user, err := ac.auth.CurrentUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (ac *AuthController) startSession(c *gin.Context, userID uint) error {
	token, err := ac.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		utils.L.Error("session create failed", zap.Error(err))
		return err
	}
	c.SetCookie(middlewares.SessionCookie, token, int(ac.sessions.TTL().Seconds()), "/", "", false, true)
	return nil
}
