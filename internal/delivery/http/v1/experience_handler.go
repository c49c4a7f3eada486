package v1

import (
	"net/http"
	"strconv"
	"time"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.WorkExperienceUsecase
}

func NewExperienceHandler(protected *gin.RouterGroup, experienceUC domain.WorkExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	experiences := protected.Group("/profile/experiences")
	{
		experiences.POST("", handler.Add)
		experiences.GET("", handler.List)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Remove)
	}
}

type CreateExperienceRequest struct {
	Company          string     `json:"company" binding:"required"`
	Position         string     `json:"position" binding:"required"`
	StartDate        time.Time  `json:"start_date" binding:"required"`
	EndDate          *time.Time `json:"end_date"`
	CurrentlyWorking bool       `json:"currently_working"`
	JobDescription   *string    `json:"job_description"`
	LeavingReason    *string    `json:"leaving_reason"`
	Salary           *float64   `json:"salary"`
}

func (h *ExperienceHandler) Add(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	w := &domain.WorkExperience{
		UserID:           c.GetInt64(string(domain.KeyUserID)),
		Company:          req.Company,
		Position:         req.Position,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		CurrentlyWorking: req.CurrentlyWorking,
		JobDescription:   req.JobDescription,
		LeavingReason:    req.LeavingReason,
		Salary:           req.Salary,
	}
	if err := h.experienceUC.Add(c.Request.Context(), w); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Work experience created", w)
}

func (h *ExperienceHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.experienceUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experiences", items)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.WorkExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	w, err := h.experienceUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience updated", w)
}

func (h *ExperienceHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.experienceUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience deleted", nil)
}
