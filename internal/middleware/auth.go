package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/token"
)

const (
	userIDKey      = "userId"
	currentUserKey = "currentUser"
)

// UserLoader resolves a token's embedded user ID to a user record.
type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware extracts the bearer token, verifies it, and loads the user
// it identifies. All failures short-circuit with the same generic 401 shape
// so callers learn nothing about why authentication failed.
func AuthMiddleware(tokens *token.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// The token may outlive the account it was issued for.
		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			} else {
				RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(currentUserKey, models.NewUserView(user))
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// CurrentUser returns the sanitized user view attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.UserView, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	view, ok := v.(*models.UserView)
	return view, ok
}
