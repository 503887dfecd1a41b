package routes

import (
	"homepro_backend/internal/handlers"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/middleware"
	"homepro_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProviderHandler.RegisterRoutes(api)
		appHandlers.ServiceRequestHandler.RegisterRoutes(api)
		appHandlers.LeadHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.GamificationHandler.RegisterRoutes(api)
		appHandlers.BackgroundCheckHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}

	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware())
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
