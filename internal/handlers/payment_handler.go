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

type PaymentHandler struct {
	*BaseHandler
	paymentService      services.PaymentService
	subscriptionService services.SubscriptionService
}

func NewPaymentHandler(
	base *BaseHandler,
	paymentService services.PaymentService,
	subscriptionService services.SubscriptionService,
) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:         base,
		paymentService:      paymentService,
		subscriptionService: subscriptionService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/methods", h.AddMethod)
		payments.GET("/methods", h.GetMethods)
		payments.POST("/methods/:id/default", h.SetDefaultMethod)
		payments.DELETE("/methods/:id", h.DeleteMethod)
		payments.GET("/transactions", h.GetTransactions)
	}

	subscriptions := rg.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		subscriptions.GET("", h.GetSubscription)
		subscriptions.POST("", h.Subscribe)
		subscriptions.DELETE("", h.CancelSubscription)
	}
}

func (h *PaymentHandler) AddMethod(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.AddPaymentMethodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.paymentService.AddMethod(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) GetMethods(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.paymentService.GetMethods(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"methods": resp})
}

func (h *PaymentHandler) SetDefaultMethod(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.paymentService.SetDefaultMethod(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default method updated"})
}

func (h *PaymentHandler) DeleteMethod(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.paymentService.DeleteMethod(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method removed"})
}

func (h *PaymentHandler) GetTransactions(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	db := h.GetDB(c)
	resp, err := h.paymentService.GetTransactions(db, userID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resp})
}

func (h *PaymentHandler) GetSubscription(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.subscriptionService.GetSubscription(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) Subscribe(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.subscriptionService.Subscribe(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) CancelSubscription(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.subscriptionService.Cancel(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}
