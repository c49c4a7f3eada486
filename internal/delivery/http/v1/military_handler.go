package v1

import (
	"net/http"
	"time"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MilitaryHandler struct {
	militaryUC domain.MilitaryUsecase
}

func NewMilitaryHandler(protected *gin.RouterGroup, militaryUC domain.MilitaryUsecase) {
	handler := &MilitaryHandler{militaryUC: militaryUC}

	service := protected.Group("/profile/military-service")
	{
		service.POST("", handler.Create)
		service.GET("", handler.Get)
		service.PUT("", handler.Update)
		service.DELETE("", handler.Delete)
	}
}

type CreateMilitaryServiceRequest struct {
	Status        string     `json:"status" binding:"required,oneof=completed exempt ongoing not_served"`
	ExemptionKind *string    `json:"exemption_kind"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

func (h *MilitaryHandler) Create(c *gin.Context) {
	var req CreateMilitaryServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	m := &domain.MilitaryService{
		UserID:        c.GetInt64(string(domain.KeyUserID)),
		Status:        req.Status,
		ExemptionKind: req.ExemptionKind,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if err := h.militaryUC.CreateRecord(c.Request.Context(), m); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Military service record created", m)
}

func (h *MilitaryHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	m, err := h.militaryUC.GetRecord(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Military service record", m)
}

func (h *MilitaryHandler) Update(c *gin.Context) {
	var patch domain.MilitaryServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	m, err := h.militaryUC.UpdateRecord(c.Request.Context(), userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Military service record updated", m)
}

func (h *MilitaryHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.militaryUC.DeleteRecord(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Military service record deleted", nil)
}
