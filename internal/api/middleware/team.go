package middleware

import (
	"net/http"

	"papermark-backend/internal/auth"
	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MembershipChecker resolves the active membership of a user in a team
type MembershipChecker interface {
	Authorize(teamID, userID uuid.UUID, roles ...models.Role) (*models.UserTeam, error)
}

// RequireTeamMember rejects requests from users who are not active members of :teamId.
// On success it stores team_id and team_role on the context.
func RequireTeamMember(checker MembershipChecker, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, err := uuid.Parse(c.Param("teamId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return
		}
		userID, ok := auth.GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		membership, err := checker.Authorize(teamID, userID, roles...)
		if err != nil {
			switch {
			case apperrors.IsAuthorization(err):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case apperrors.IsNotFound(err):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				logger.FromGinContext(c).WithError(err).Error("Failed to check team membership")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set("team_id", teamID)
		c.Set("team_role", membership.Role)
		c.Next()
	}
}

// GetTeamID returns the team resolved by RequireTeamMember
func GetTeamID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("team_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetTeamRole returns the caller's role in the team resolved by RequireTeamMember
func GetTeamRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get("team_role")
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

// RequireTeamRole restricts a group already behind RequireTeamMember to the given roles
func RequireTeamRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetTeamRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotTeamMember.Error()})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
	}
}
