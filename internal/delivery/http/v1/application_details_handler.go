package v1

import (
	"net/http"
	"time"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationDetailsHandler struct {
	detailsUC domain.ApplicationDetailsUsecase
}

func NewApplicationDetailsHandler(protected *gin.RouterGroup, detailsUC domain.ApplicationDetailsUsecase) {
	handler := &ApplicationDetailsHandler{detailsUC: detailsUC}

	details := protected.Group("/profile/application-details")
	{
		details.POST("", handler.Create)
		details.GET("", handler.Get)
		details.PUT("", handler.Update)
		details.DELETE("", handler.Delete)
	}
}

type CreateApplicationDetailsRequest struct {
	ConnectionType string `json:"connection_type" binding:"required,oneof=internet ads personal job_agency referral"`

	ReferrerName         *string `json:"referrer_name"`
	ReferrerRelationship *string `json:"referrer_relationship"`
	ReferrerPhone        *string `json:"referrer_phone" binding:"omitempty,mobile"`

	HasRelativesInCompany bool    `json:"has_relatives_in_company"`
	RelativeName          *string `json:"relative_name"`
	RelativePosition      *string `json:"relative_position"`
	RelativeRelationship  *string `json:"relative_relationship"`

	AvailableFromDate time.Time `json:"available_from_date" binding:"required"`

	PreferredWorkSchedule string `json:"preferred_work_schedule" binding:"required,oneof=full_time part_time day_shift shift_based flexible"`

	ExpectedSalary float64 `json:"expected_salary" binding:"required,gt=0"`
	SalaryCurrency string  `json:"salary_currency"`
	SalaryPeriod   string  `json:"salary_period"`

	HasHealthIssue         bool    `json:"has_health_issue"`
	HealthIssueDescription *string `json:"health_issue_description"`

	HasDisability         bool    `json:"has_disability"`
	DisabilityDescription *string `json:"disability_description"`

	TakesMedication   bool    `json:"takes_medication"`
	MedicationDetails *string `json:"medication_details"`

	HasCriminalRecord     bool    `json:"has_criminal_record"`
	CriminalRecordDetails *string `json:"criminal_record_details"`

	FavoriteSport *string `json:"favorite_sport"`

	HasTransportation *bool   `json:"has_transportation"`
	WillingToRelocate bool    `json:"willing_to_relocate"`
	OtherComments     *string `json:"other_comments"`
}

func (h *ApplicationDetailsHandler) Create(c *gin.Context) {
	var req CreateApplicationDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	d := &domain.ApplicationDetails{
		UserID:                 c.GetInt64(string(domain.KeyUserID)),
		ConnectionType:         req.ConnectionType,
		ReferrerName:           req.ReferrerName,
		ReferrerRelationship:   req.ReferrerRelationship,
		ReferrerPhone:          req.ReferrerPhone,
		HasRelativesInCompany:  req.HasRelativesInCompany,
		RelativeName:           req.RelativeName,
		RelativePosition:       req.RelativePosition,
		RelativeRelationship:   req.RelativeRelationship,
		AvailableFromDate:      req.AvailableFromDate,
		PreferredWorkSchedule:  req.PreferredWorkSchedule,
		ExpectedSalary:         req.ExpectedSalary,
		SalaryCurrency:         req.SalaryCurrency,
		SalaryPeriod:           req.SalaryPeriod,
		HasHealthIssue:         req.HasHealthIssue,
		HealthIssueDescription: req.HealthIssueDescription,
		HasDisability:          req.HasDisability,
		DisabilityDescription:  req.DisabilityDescription,
		TakesMedication:        req.TakesMedication,
		MedicationDetails:      req.MedicationDetails,
		HasCriminalRecord:      req.HasCriminalRecord,
		CriminalRecordDetails:  req.CriminalRecordDetails,
		FavoriteSport:          req.FavoriteSport,
		HasTransportation:      true,
		WillingToRelocate:      req.WillingToRelocate,
		OtherComments:          req.OtherComments,
	}
	if req.HasTransportation != nil {
		d.HasTransportation = *req.HasTransportation
	}
	if err := h.detailsUC.CreateRecord(c.Request.Context(), d); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application details created", d)
}

func (h *ApplicationDetailsHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	d, err := h.detailsUC.GetRecord(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", d)
}

func (h *ApplicationDetailsHandler) Update(c *gin.Context) {
	var patch domain.ApplicationDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	d, err := h.detailsUC.UpdateRecord(c.Request.Context(), userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details updated", d)
}

func (h *ApplicationDetailsHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.detailsUC.DeleteRecord(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details deleted", nil)
}
