package handlers

import (
	"net/http"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	*BaseHandler
	gamificationService services.GamificationService
}

func NewGamificationHandler(base *BaseHandler, gamificationService services.GamificationService) *GamificationHandler {
	return &GamificationHandler{
		BaseHandler:         base,
		gamificationService: gamificationService,
	}
}

func (h *GamificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gamification := rg.Group("/gamification")
	gamification.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		gamification.GET("/status", h.GetStatus)
		gamification.POST("/claim", h.ClaimBonuses)
	}
}

func (h *GamificationHandler) GetStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.gamificationService.GetStatus(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GamificationHandler) ClaimBonuses(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.gamificationService.ClaimBonuses(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
