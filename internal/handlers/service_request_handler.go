package handlers

import (
	"net/http"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceRequestHandler struct {
	*BaseHandler
	requestService services.ServiceRequestService
}

func NewServiceRequestHandler(base *BaseHandler, requestService services.ServiceRequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *ServiceRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.GetServices)

	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCustomer))
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.GetMyRequests)
		requests.PATCH("/:id/status", h.UpdateStatus)
	}
}

// GetServices - публичный каталог услуг
func (h *ServiceRequestHandler) GetServices(c *gin.Context) {
	db := h.GetDB(c)
	resp, err := h.requestService.GetServices(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": resp})
}

func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.requestService.CreateRequest(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ServiceRequestHandler) GetMyRequests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.requestService.GetCustomerRequests(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resp})
}

func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var body struct {
		Status models.RequestStatus `json:"status" validate:"required,is-request-status"`
	}
	if !h.BindAndValidateJSON(c, &body) {
		return
	}

	db := h.GetDB(c)
	if err := h.requestService.UpdateRequestStatus(db, userID, c.Param("id"), body.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
