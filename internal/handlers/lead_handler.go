package handlers

import (
	"net/http"
	"strconv"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	*BaseHandler
	leadService services.LeadService
}

func NewLeadHandler(base *BaseHandler, leadService services.LeadService) *LeadHandler {
	return &LeadHandler{
		BaseHandler: base,
		leadService: leadService,
	}
}

func (h *LeadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/lead-packages", h.GetPackages)

	leads := rg.Group("/leads")
	leads.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		leads.GET("", h.GetAvailableLeads)
		leads.GET("/mine", h.GetMyLeads)
		leads.POST("/:id/purchase", h.PurchaseLead)
		leads.POST("/packages/purchase", h.PurchasePackage)
	}
}

// GetPackages - публичный каталог пакетов лидов
func (h *LeadHandler) GetPackages(c *gin.Context) {
	db := h.GetDB(c)
	resp, err := h.leadService.GetPackages(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": resp})
}

func (h *LeadHandler) GetAvailableLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	db := h.GetDB(c)
	resp, err := h.leadService.GetAvailableLeads(db, c.Query("city"), c.Query("state"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LeadHandler) GetMyLeads(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.leadService.GetMyLeads(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LeadHandler) PurchaseLead(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.leadService.PurchaseLead(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LeadHandler) PurchasePackage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.PurchasePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.leadService.PurchasePackage(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
