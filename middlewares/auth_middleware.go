package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

// SessionCookie is the name of the auth cookie holding the opaque session token.
const SessionCookie = "fitness_session"

// AuthRequired resolves the session cookie to a user id and stores it on the
// context as "userID". Requests without a live session get a 401.
func AuthRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
