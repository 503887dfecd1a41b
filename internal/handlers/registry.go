package handlers

import (
	"homepro_backend/internal/services"
	"homepro_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения
type AppHandlers struct {
	AuthHandler            *AuthHandler
	UserHandler            *UserHandler
	ProviderHandler        *ProviderHandler
	ServiceRequestHandler  *ServiceRequestHandler
	LeadHandler            *LeadHandler
	ReviewHandler          *ReviewHandler
	GamificationHandler    *GamificationHandler
	BackgroundCheckHandler *BackgroundCheckHandler
	PaymentHandler         *PaymentHandler
	MessageHandler         *MessageHandler
	UploadHandler          *UploadHandler
}

// NewAppHandlers собирает все хэндлеры поверх одного BaseHandler
func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:            NewAuthHandler(base, container.AuthService),
		UserHandler:            NewUserHandler(base, container.UserService),
		ProviderHandler:        NewProviderHandler(base, container.ProviderService),
		ServiceRequestHandler:  NewServiceRequestHandler(base, container.ServiceRequestService),
		LeadHandler:            NewLeadHandler(base, container.LeadService),
		ReviewHandler:          NewReviewHandler(base, container.ReviewService),
		GamificationHandler:    NewGamificationHandler(base, container.GamificationService),
		BackgroundCheckHandler: NewBackgroundCheckHandler(base, container.BackgroundCheckService),
		PaymentHandler:         NewPaymentHandler(base, container.PaymentService, container.SubscriptionService),
		MessageHandler:         NewMessageHandler(base, container.MessageService),
		UploadHandler:          NewUploadHandler(base, container.UploadService),
	}
}
