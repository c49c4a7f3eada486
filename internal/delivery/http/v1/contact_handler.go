package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	info := protected.Group("/profile/contact-info")
	{
		info.POST("", handler.CreateInfo)
		info.GET("", handler.GetInfo)
		info.PUT("", handler.UpdateInfo)
		info.DELETE("", handler.DeleteInfo)
	}

	addresses := protected.Group("/profile/addresses")
	{
		addresses.POST("", handler.AddAddress)
		addresses.GET("", handler.ListAddresses)
		addresses.PUT("/:id", handler.UpdateAddress)
		addresses.DELETE("/:id", handler.RemoveAddress)
	}
}

type CreateContactInfoRequest struct {
	Phone          string  `json:"phone" binding:"required,mobile"`
	EmergencyPhone *string `json:"emergency_phone" binding:"omitempty,mobile"`
	Email          *string `json:"email" binding:"omitempty,email"`
}

func (h *ContactHandler) CreateInfo(c *gin.Context) {
	var req CreateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info := &domain.ContactInfo{
		UserID:         c.GetInt64(string(domain.KeyUserID)),
		Phone:          req.Phone,
		EmergencyPhone: req.EmergencyPhone,
		Email:          req.Email,
	}
	if err := h.contactUC.CreateInfo(c.Request.Context(), info); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Contact info created", info)
}

func (h *ContactHandler) GetInfo(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	info, err := h.contactUC.GetInfo(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info", info)
}

func (h *ContactHandler) UpdateInfo(c *gin.Context) {
	var patch domain.ContactInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	info, err := h.contactUC.UpdateInfo(c.Request.Context(), userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info updated", info)
}

func (h *ContactHandler) DeleteInfo(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.contactUC.DeleteInfo(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info deleted", nil)
}

type CreateAddressRequest struct {
	Province      string  `json:"province" binding:"required"`
	City          string  `json:"city" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,postal_code"`
	HousingStatus string  `json:"housing_status" binding:"required,oneof=owned rented parental other"`
}

func (h *ContactHandler) AddAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	a := &domain.Address{
		UserID:        c.GetInt64(string(domain.KeyUserID)),
		Province:      req.Province,
		City:          req.City,
		Address:       req.Address,
		PostalCode:    req.PostalCode,
		HousingStatus: req.HousingStatus,
	}
	if err := h.contactUC.AddAddress(c.Request.Context(), a); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Address created", a)
}

func (h *ContactHandler) ListAddresses(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.contactUC.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Addresses", items)
}

func (h *ContactHandler) UpdateAddress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid address id"))
		return
	}

	var patch domain.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	a, err := h.contactUC.UpdateAddress(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address updated", a)
}

func (h *ContactHandler) RemoveAddress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid address id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.contactUC.RemoveAddress(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address deleted", nil)
}
