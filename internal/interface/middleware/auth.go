package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
	"github.com/dailyforge/dailyforge-api/pkg/response"
)

// Auth validates the bearer token and confirms the user still exists. It
// sets userID, userEmail, and username in the Gin context on success. Only
// the Authorization header is consulted; there is no cookie fallback and no
// server-side session.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		// The token may outlive the account; a vanished user is unauthorized,
		// not a 500.
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("userID", u.ID)
		c.Set("userEmail", u.Email)
		c.Set("username", u.Username)
		c.Next()
	}
}
