package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"recruitment-intake-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header that must contain the CSRF token
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern: mutating
// requests must echo the csrf_token cookie in the X-CSRF-Token header.
// Cross-origin attackers can make the browser send the cookie but cannot
// read it, so they cannot forge the header.
//
// Public auth routes are exempt because the client has no session yet;
// those endpoints are rate-limited instead.
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	csrfExemptPaths := map[string]bool{
		"/v1/auth/login":    true,
		"/v1/auth/register": true,
		"/v1/auth/refresh":  true,
		"/v1/health":        true,
	}

	return func(c *gin.Context) {
		setCookieIfMissing := func() string {
			csrfCookie, err := c.Cookie(CSRFTokenCookieName)
			if err == nil && csrfCookie != "" {
				return csrfCookie
			}
			newToken, genErr := generateCSRFToken()
			if genErr != nil {
				return ""
			}
			c.SetSameSite(http.SameSiteLaxMode)
			// HttpOnly stays false: the frontend must read this value
			c.SetCookie(CSRFTokenCookieName, newToken, int(CSRFTokenExpiry.Seconds()), "/", "", secureCookie, false)
			return newToken
		}

		if csrfExemptPaths[c.Request.URL.Path] {
			setCookieIfMissing()
			c.Next()
			return
		}

		csrfCookie := setCookieIfMissing()
		if csrfCookie == "" {
			response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
			c.Abort()
			return
		}

		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		if headerToken != csrfCookie {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
