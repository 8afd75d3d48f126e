package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docspot/booking-api/internal/handler"
	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	"github.com/docspot/booking-api/pkg/auth"
)

const contextUserID = "userID"

type AuthMiddleware struct {
	jwtSvc auth.JWTService
	users  repository.UserRepository
}

func NewAuthMiddleware(jwtSvc auth.JWTService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc: jwtSvc,
		users:  users,
	}
}

// Authenticate verifies the bearer token and sets the account ID in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		userID, err := m.jwtSvc.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// RequireAdmin loads the authenticated account and rejects non-admin roles.
// Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
			c.Abort()
			return
		}

		user, err := m.users.Get(c.Request.Context(), userID)
		if err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("account not found"))
			} else {
				c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
			}
			c.Abort()
			return
		}

		if user.Role != model.RoleAdmin {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("admin privileges required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated account identifier set by Authenticate.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(contextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
