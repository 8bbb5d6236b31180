package middleware

import (
	"errors"
	"net/http"

	"technomaster/internal/model"
	"technomaster/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentUserKey holds the *model.User of the active session
const CurrentUserKey = "currentUser"

// CurrentUserFunc returns the logged-in customer
type CurrentUserFunc func(c *gin.Context) (*model.User, error)

// SessionMiddleware admits the request only when the stored session belongs to
// the token subject. It must run after JWTAuthMiddleware.
func SessionMiddleware(current CurrentUserFunc, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(AuthSubjectKey)
		if subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		user, err := current(c)
		if err != nil {
			if errors.Is(err, repository.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
				return
			}
			logger.Error("failed to load session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if user.ID != subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session belongs to another customer, please log in again"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// SessionUser returns the user stored by SessionMiddleware
func SessionUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}
