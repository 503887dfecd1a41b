package services

import (
	"homepro_backend/internal/email"
	"homepro_backend/internal/imageprocessor"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	AuthService            AuthService
	UserService            UserService
	ProviderService        ProviderService
	ServiceRequestService  ServiceRequestService
	LeadService            LeadService
	ReviewService          ReviewService
	GamificationService    GamificationService
	BackgroundCheckService BackgroundCheckService
	PaymentService         PaymentService
	SubscriptionService    SubscriptionService
	MessageService         MessageService
	UploadService          UploadService
}

// NewServiceContainer собирает сервисы с их зависимостями
func NewServiceContainer(emailProvider email.Provider, notifier MessageNotifier, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	providerRepo := repositories.NewProviderRepository()
	customerRepo := repositories.NewCustomerRepository()
	reviewRepo := repositories.NewReviewRepository()
	requestRepo := repositories.NewServiceRequestRepository()
	leadRepo := repositories.NewLeadRepository()
	gamificationRepo := repositories.NewGamificationRepository()
	paymentRepo := repositories.NewPaymentRepository()
	checkRepo := repositories.NewBackgroundCheckRepository()
	messageRepo := repositories.NewMessageRepository()

	paymentService := NewPaymentService(paymentRepo)

	return &ServiceContainer{
		AuthService:            NewAuthService(userRepo, providerRepo, customerRepo, emailProvider),
		UserService:            NewUserService(userRepo),
		ProviderService:        NewProviderService(userRepo, providerRepo),
		ServiceRequestService:  NewServiceRequestService(requestRepo, customerRepo, leadRepo),
		LeadService:            NewLeadService(leadRepo, providerRepo, paymentService),
		ReviewService:          NewReviewService(reviewRepo, providerRepo, customerRepo, userRepo),
		GamificationService:    NewGamificationService(reviewRepo, gamificationRepo, providerRepo),
		BackgroundCheckService: NewBackgroundCheckService(checkRepo, providerRepo),
		PaymentService:         paymentService,
		SubscriptionService:    NewSubscriptionService(providerRepo, paymentService),
		MessageService:         NewMessageService(messageRepo, userRepo, notifier),
		UploadService:          NewUploadService(providerRepo, store, imageprocessor.NewProcessor(85)),
	}
}
