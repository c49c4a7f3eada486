package v1

import (
	"net/http"

	"recruitment-intake-backend/config"
	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", loginLimiter, handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/refresh", handler.Refresh)
		publicAuth.POST("/logout", handler.Logout)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/change-password", handler.ChangePassword)
	}
}

type RegisterRequest struct {
	Mobile   string  `json:"mobile" binding:"required,mobile"`
	Password string  `json:"password" binding:"required,min=8"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Mobile, req.Password, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required,mobile"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, pair, err := h.authUC.Login(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": pair,
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh rotates the refresh token. Browser clients rely on the cookie;
// API clients send the token in the body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := h.refreshTokenFrom(c)
	if token == "" {
		c.Error(apperror.Unauthorized("Refresh token required"))
		return
	}

	pair, err := h.authUC.Refresh(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Token refreshed", pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.refreshTokenFrom(c); token != "" {
		if err := h.authUC.Logout(c.Request.Context(), token); err != nil {
			c.Error(err)
			return
		}
	}

	h.clearAuthCookies(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	h.clearAuthCookies(c)
	response.Success(c, http.StatusOK, "Password changed. Please log in again.", nil)
}

func (h *AuthHandler) refreshTokenFrom(c *gin.Context) string {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *domain.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", pair.AccessToken,
		h.config.AccessTTLMin*60, "/", "", h.config.CookieSecure, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken,
		h.config.RefreshTTLDays*24*3600, "/v1/auth", "", h.config.CookieSecure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", h.config.CookieSecure, true)
	c.SetCookie(refreshCookieName, "", -1, "/v1/auth", "", h.config.CookieSecure, true)
}
