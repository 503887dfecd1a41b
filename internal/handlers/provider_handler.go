package handlers

import (
	"net/http"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
	}
}

func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	providers := rg.Group("/providers")
	{
		providers.GET("", h.GetProviders)
		providers.GET("/:id", h.GetProvider)
	}

	me := rg.Group("/providers/me")
	me.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		me.PATCH("", h.UpdateMe)
	}
}

// GetProviders - список активированных провайдеров с фильтрами и пагинацией
func (h *ProviderHandler) GetProviders(c *gin.Context) {
	var req dto.ProviderListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.providerService.GetProviders(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	db := h.GetDB(c)
	resp, err := h.providerService.GetProvider(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProviderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.providerService.UpdateProvider(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
