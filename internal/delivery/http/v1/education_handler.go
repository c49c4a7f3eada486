package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	educations := protected.Group("/profile/educations")
	{
		educations.POST("", handler.Add)
		educations.GET("", handler.List)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Remove)
	}
}

type CreateEducationRequest struct {
	Degree      string   `json:"degree" binding:"required,oneof=diploma associate bachelor master doctorate"`
	Field       string   `json:"field" binding:"required"`
	University  string   `json:"university" binding:"required"`
	Average     *float64 `json:"average"`
	StartYear   int      `json:"start_year" binding:"required"`
	EndYear     *int     `json:"end_year"`
	StudyStatus string   `json:"study_status" binding:"required,oneof=studying graduated dropped"`
	Description *string  `json:"description"`
}

func (h *EducationHandler) Add(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	e := &domain.Education{
		UserID:      c.GetInt64(string(domain.KeyUserID)),
		Degree:      req.Degree,
		Field:       req.Field,
		University:  req.University,
		Average:     req.Average,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		StudyStatus: req.StudyStatus,
		Description: req.Description,
	}
	if err := h.educationUC.Add(c.Request.Context(), e); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education record created", e)
}

func (h *EducationHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.educationUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education records", items)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	e, err := h.educationUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education record updated", e)
}

func (h *EducationHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.educationUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education record deleted", nil)
}
