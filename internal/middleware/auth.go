package middleware

import (
	"net/http"

	"github.com/RiniPat/aaDinehub/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests without a live session cookie and
// attaches the resolved user id to the request context.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := session.TokenFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, ok := sessions.UserID(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
