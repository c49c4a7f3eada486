package middleware

import (
	"strings"

	"recruitment-intake-backend/config"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// OptionalAuth loads the caller into the request context when a valid
// access token is presented, and lets the request through anonymously
// otherwise. Catalog reads are public, but admins browsing the catalog
// must still be recognized so they see their assigned postings.
func OptionalAuth(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseAccessToken(cfg.JWTSecret, tokenString)
		if err != nil {
			// A bad token on a public route degrades to anonymous
			c.Next()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			c.Next()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserMobile), user.Mobile)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
