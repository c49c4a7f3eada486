package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := protected.Group("/profile/skills")
	{
		skills.POST("", handler.Add)
		skills.GET("", handler.List)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Remove)
	}
}

type CreateSkillRequest struct {
	Name            string  `json:"skill_name" binding:"required"`
	Level           string  `json:"skill_level" binding:"required,oneof=beginner intermediate advanced expert"`
	YearsExperience *int    `json:"years_of_experience" binding:"omitempty,min=0,max=50"`
	Description     *string `json:"description"`
}

func (h *SkillHandler) Add(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	s := &domain.Skill{
		UserID:          c.GetInt64(string(domain.KeyUserID)),
		Name:            req.Name,
		Level:           req.Level,
		YearsExperience: req.YearsExperience,
		Description:     req.Description,
	}
	if err := h.skillUC.Add(c.Request.Context(), s); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", s)
}

func (h *SkillHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.skillUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills", items)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	s, err := h.skillUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", s)
}

func (h *SkillHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.skillUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
