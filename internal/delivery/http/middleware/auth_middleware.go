package middleware

import (
	"net/http"
	"strings"

	"recruitment-intake-backend/config"
	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the access token and loads the caller into the
// request context. The token is taken from the Authorization header, or
// from the auth_token cookie for browser clients.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := auth.ParseAccessToken(cfg.JWTSecret, tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// The role claim may be stale; the database is authoritative. This
		// also rejects tokens for deleted or deactivated accounts.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Error(c, http.StatusForbidden, "Account is disabled", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserMobile), user.Mobile)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
