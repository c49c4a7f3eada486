package v1

import (
	"net/http"
	"strconv"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FamilyHandler struct {
	familyUC domain.FamilyUsecase
}

func NewFamilyHandler(protected *gin.RouterGroup, familyUC domain.FamilyUsecase) {
	handler := &FamilyHandler{familyUC: familyUC}

	members := protected.Group("/profile/family-members")
	{
		members.POST("", handler.Add)
		members.GET("", handler.List)
		members.PUT("/:id", handler.Update)
		members.DELETE("/:id", handler.Remove)
	}
}

type CreateFamilyMemberRequest struct {
	Relation   string  `json:"relation" binding:"required,oneof=father mother spouse child sibling"`
	FullName   string  `json:"full_name" binding:"required"`
	BirthYear  *int    `json:"birth_year"`
	Education  *string `json:"education"`
	Occupation *string `json:"occupation"`
}

func (h *FamilyHandler) Add(c *gin.Context) {
	var req CreateFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	f := &domain.FamilyMember{
		UserID:     c.GetInt64(string(domain.KeyUserID)),
		Relation:   req.Relation,
		FullName:   req.FullName,
		BirthYear:  req.BirthYear,
		Education:  req.Education,
		Occupation: req.Occupation,
	}
	if err := h.familyUC.Add(c.Request.Context(), f); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Family member created", f)
}

func (h *FamilyHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	items, err := h.familyUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Family members", items)
}

func (h *FamilyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	var patch domain.FamilyMemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	f, err := h.familyUC.Update(c.Request.Context(), userID, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Family member updated", f)
}

func (h *FamilyHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid record id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.familyUC.Remove(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Family member deleted", nil)
}
