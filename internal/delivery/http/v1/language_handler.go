package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	languageUC domain.LanguageUsecase
}

func NewLanguageHandler(protected *gin.RouterGroup, languageUC domain.LanguageUsecase) {
	handler := &LanguageHandler{languageUC: languageUC}

	skills := protected.Group("/profile/language-skills")
	{
		skills.POST("", handler.Add)
		skills.GET("", handler.List)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Remove)
	}
}

type CreateLanguageSkillRequest struct {
	Language    string  `json:"language" binding:"required"`
	Reading     string  `json:"reading" binding:"required,oneof=weak medium good excellent"`
	Writing     string  `json:"writing" binding:"required,oneof=weak medium good excellent"`
	Speaking    string  `json:"speaking" binding:"required,oneof=weak medium good excellent"`
	Certificate *string `json:"certificate"`
}

func (h *LanguageHandler) Add(c *gin.Context) {
	var req CreateLanguageSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	l := &domain.LanguageSkill{
		UserID:      c.GetInt64(string(domain.KeyUserID)),
		Language:    req.Language,
		Reading:     req.Reading,
		Writing:     req.Writing,
		Speaking:    req.Speaking,
		Certificate: req.Certificate,
	}
	if err := h.languageUC.Add(c.Request.Context(), l); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Language skill created", l)
}

func (h *LanguageHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.languageUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language skills", items)
}

func (h *LanguageHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.LanguageSkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	l, err := h.languageUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language skill updated", l)
}

func (h *LanguageHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.languageUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language skill deleted", nil)
}
