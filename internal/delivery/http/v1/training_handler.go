package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	trainingUC domain.TrainingUsecase
}

func NewTrainingHandler(protected *gin.RouterGroup, trainingUC domain.TrainingUsecase) {
	handler := &TrainingHandler{trainingUC: trainingUC}

	courses := protected.Group("/profile/training-courses")
	{
		courses.POST("", handler.Add)
		courses.GET("", handler.List)
		courses.PUT("/:id", handler.Update)
		courses.DELETE("/:id", handler.Remove)
	}
}

type CreateTrainingCourseRequest struct {
	Title          string  `json:"title" binding:"required"`
	Institute      string  `json:"institute" binding:"required"`
	DurationHours  *int    `json:"duration_hours"`
	Year           *int    `json:"year"`
	HasCertificate bool    `json:"has_certificate"`
	Description    *string `json:"description"`
}

func (h *TrainingHandler) Add(c *gin.Context) {
	var req CreateTrainingCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	t := &domain.TrainingCourse{
		UserID:         c.GetInt64(string(domain.KeyUserID)),
		Title:          req.Title,
		Institute:      req.Institute,
		DurationHours:  req.DurationHours,
		Year:           req.Year,
		HasCertificate: req.HasCertificate,
		Description:    req.Description,
	}
	if err := h.trainingUC.Add(c.Request.Context(), t); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Training course created", t)
}

func (h *TrainingHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.trainingUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Training courses", items)
}

func (h *TrainingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.TrainingCoursePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	t, err := h.trainingUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Training course updated", t)
}

func (h *TrainingHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.trainingUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Training course deleted", nil)
}
