package handlers

import (
	"net/http"
	"strconv"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("", h.SendMessage)
		messages.GET("/unread-count", h.GetUnreadCount)
		messages.GET("/:userId", h.GetConversation)
		messages.POST("/:userId/read", h.MarkRead)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.messageService.SendMessage(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	db := h.GetDB(c)
	resp, err := h.messageService.GetConversation(db, userID, c.Param("userId"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": resp})
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.messageService.MarkConversationRead(db, userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked as read"})
}

func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	count, err := h.messageService.CountUnread(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
