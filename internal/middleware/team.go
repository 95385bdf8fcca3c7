package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TeamResolver resolves the team a user belongs to. Implemented by the
// user service; declared here so the middleware depends on the behavior,
// not the service package.
type TeamResolver interface {
	TeamIDForUser(userID string) (string, error)
}

// RequireTeam resolves the authenticated user's team and sets "teamID" in
// the context. Requests from users without a team are rejected before any
// budgeting handler runs; every downstream query is scoped by this value.
func RequireTeam(resolver TeamResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		teamID, err := resolver.TeamIDForUser(userID.(string))
		if err != nil || teamID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You must belong to a team to perform this action"})
			c.Abort()
			return
		}

		c.Set("teamID", teamID)
		c.Next()
	}
}
