package v1

import (
	"net/http"
	"time"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicantHandler struct {
	applicantUC domain.ApplicantUsecase
}

func NewApplicantHandler(protected *gin.RouterGroup, applicantUC domain.ApplicantUsecase) {
	handler := &ApplicantHandler{applicantUC: applicantUC}

	profile := protected.Group("/profile/applicant")
	{
		profile.POST("", handler.Create)
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.DELETE("", handler.Delete)
	}
}

type CreateApplicantRequest struct {
	FirstName     string    `json:"first_name" binding:"required"`
	LastName      string    `json:"last_name" binding:"required"`
	FatherName    *string   `json:"father_name"`
	NationalID    string    `json:"national_id" binding:"required"`
	BirthDate     time.Time `json:"birth_date" binding:"required"`
	Gender        string    `json:"gender" binding:"required,oneof=male female"`
	MaritalStatus string    `json:"marital_status" binding:"required,oneof=single married"`
}

func (h *ApplicantHandler) Create(c *gin.Context) {
	var req CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	a := &domain.Applicant{
		UserID:        c.GetInt64(string(domain.KeyUserID)),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		FatherName:    req.FatherName,
		NationalID:    req.NationalID,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
	}
	if err := h.applicantUC.CreateProfile(c.Request.Context(), a); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Applicant profile created", a)
}

func (h *ApplicantHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	a, err := h.applicantUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile", a)
}

func (h *ApplicantHandler) Update(c *gin.Context) {
	var patch domain.ApplicantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	a, err := h.applicantUC.UpdateProfile(c.Request.Context(), userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile updated", a)
}

func (h *ApplicantHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.applicantUC.DeleteProfile(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile deleted", nil)
}
