package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/job-applications")
	{
		apps.POST("/apply", handler.Apply)
		apps.GET("", handler.MyApplications)
		apps.PUT("/:id", handler.Update)
		apps.DELETE("/:id", handler.Withdraw)
		apps.GET("/available-jobs", handler.AvailableJobs)
		apps.GET("/summary", handler.Summary)
		apps.GET("/admin/all", handler.ListAll)
		apps.GET("/statistics", handler.Statistics)
	}
}

type ApplyRequest struct {
	Applications []SelectionRequest `json:"applications" binding:"required,len=3,dive"`
}

type SelectionRequest struct {
	JobID    int64   `json:"job_id" binding:"required"`
	Score    float64 `json:"score" binding:"required,admission_score"`
	Priority int     `json:"priority" binding:"required,min=1,max=3"`
}

// Apply submits the user's one-shot batch of three job selections
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	selections := make([]domain.JobSelection, len(req.Applications))
	for i, s := range req.Applications {
		selections[i] = domain.JobSelection{
			JobID:    s.JobID,
			Score:    s.Score,
			Priority: s.Priority,
		}
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	created, err := h.applicationUC.SubmitBatch(c.Request.Context(), userID, selections)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Applications submitted", created)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your applications", apps)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var patch domain.ApplicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.UpdateApplication(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", app)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.applicationUC.WithdrawApplication(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

func (h *ApplicationHandler) AvailableJobs(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	jobs, err := h.applicationUC.AvailableJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Available jobs", jobs)
}

func (h *ApplicationHandler) Summary(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	summary, err := h.applicationUC.Summary(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications summary", summary)
}

func (h *ApplicationHandler) ListAll(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	apps, err := h.applicationUC.ListAll(c.Request.Context(), role)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All applications", apps)
}

func (h *ApplicationHandler) Statistics(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	stats, err := h.applicationUC.Statistics(c.Request.Context(), role)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application statistics", stats)
}
