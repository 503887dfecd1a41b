package handlers

import (
	"net/http"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BackgroundCheckHandler struct {
	*BaseHandler
	checkService services.BackgroundCheckService
}

func NewBackgroundCheckHandler(base *BaseHandler, checkService services.BackgroundCheckService) *BackgroundCheckHandler {
	return &BackgroundCheckHandler{
		BaseHandler:  base,
		checkService: checkService,
	}
}

func (h *BackgroundCheckHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checks := rg.Group("/background-check")
	checks.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		checks.POST("/consent", h.SubmitConsent)
		checks.GET("/status", h.GetStatus)
		checks.POST("/complete", h.CompleteCheck)
	}
}

func (h *BackgroundCheckHandler) SubmitConsent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ConsentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.checkService.SubmitConsent(db, userID, c.ClientIP(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BackgroundCheckHandler) GetStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.checkService.GetStatus(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteCheck - симуляция webhook-а вендора проверки.
// В реальной интеграции этот маршрут заменяется подписанным webhook-ом.
func (h *BackgroundCheckHandler) CompleteCheck(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.checkService.CompleteCheck(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
