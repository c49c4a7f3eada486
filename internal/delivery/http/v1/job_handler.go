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

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.Get)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title        string     `json:"title" binding:"required"`
	Company      string     `json:"company" binding:"required"`
	Location     string     `json:"location" binding:"required"`
	PostedDate   *time.Time `json:"posted_date"`
	Deadline     *time.Time `json:"deadline"`
	Description  string     `json:"description" binding:"required"`
	Requirements *string    `json:"requirements"`
	Salary       *string    `json:"salary"`
	JobType      *string    `json:"job_type"`
	IsActive     *bool      `json:"is_active"`
}

func (h *JobHandler) Create(c *gin.Context) {
	if role := c.GetString(string(domain.KeyUserRole)); role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Admin access required"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.JobPosting{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		JobType:      req.JobType,
		IsActive:     true,
	}
	if req.PostedDate != nil {
		job.PostedDate = *req.PostedDate
	} else {
		job.PostedDate = time.Now().Truncate(24 * time.Hour)
	}
	job.Deadline = req.Deadline
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	adminID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), adminID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	callerRole := c.GetString(string(domain.KeyUserRole))
	job, err := h.jobUC.GetJob(c.Request.Context(), id, callerRole)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	callerID := c.GetInt64(string(domain.KeyUserID))
	callerRole := c.GetString(string(domain.KeyUserRole))

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), callerID, callerRole, activeOnly, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job listings", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	adminID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), adminID, role, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	adminID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if err := h.jobUC.DeleteJob(c.Request.Context(), adminID, role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
