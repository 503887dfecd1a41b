package services

import (
	"fmt"
	"time"

	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const subscriptionPeriod = 30 * 24 * time.Hour

type SubscriptionService interface {
	Subscribe(db *gorm.DB, providerID string, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
	Cancel(db *gorm.DB, providerID string) error
	GetSubscription(db *gorm.DB, providerID string) (*dto.SubscriptionResponse, error)
}

type SubscriptionServiceImpl struct {
	providerRepo   repositories.ProviderRepository
	paymentService PaymentService
}

func NewSubscriptionService(
	providerRepo repositories.ProviderRepository,
	paymentService PaymentService,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		providerRepo:   providerRepo,
		paymentService: paymentService,
	}
}

// Subscribe переводит провайдера на платный план.
// Списывается цена плана плюс комиссия шлюза, план действует 30 дней.
func (s *SubscriptionServiceImpl) Subscribe(db *gorm.DB, providerID string, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !provider.ProfileActivated {
		return nil, apperrors.ErrProfileNotActivated
	}

	price := pricing.PlanPrice(req.Plan)
	if price <= 0 {
		return nil, apperrors.ErrInvalidOperation("subscription", "Unknown subscription plan")
	}

	gatewayFee := pricing.PaymentGatewayFee(price)
	totalCharged := pricing.TotalWithFee(price)
	expiresAt := time.Now().Add(subscriptionPeriod)

	err = db.Transaction(func(tx *gorm.DB) error {
		description := fmt.Sprintf("%s monthly subscription", pricing.PlanName(req.Plan))
		if _, err := s.paymentService.Charge(tx, providerID, totalCharged, models.PaymentTypeSubscription, req.PaymentMethodID, description); err != nil {
			return err
		}
		return s.providerRepo.Update(tx, providerID, map[string]interface{}{
			"subscription_plan":       req.Plan,
			"subscription_expires_at": expiresAt,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{
		Plan:         req.Plan,
		Price:        price,
		GatewayFee:   gatewayFee,
		TotalCharged: totalCharged,
		ExpiresAt:    &expiresAt,
		Features:     planFeatureNames(req.Plan),
	}, nil
}

// Cancel немедленно снимает платный план
func (s *SubscriptionServiceImpl) Cancel(db *gorm.DB, providerID string) error {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if provider.SubscriptionPlan == models.SubscriptionPlanNone {
		return apperrors.ErrSubscriptionCancelled
	}

	return s.providerRepo.Update(db, providerID, map[string]interface{}{
		"subscription_plan":       models.SubscriptionPlanNone,
		"subscription_expires_at": nil,
	})
}

func (s *SubscriptionServiceImpl) GetSubscription(db *gorm.DB, providerID string) (*dto.SubscriptionResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.SubscriptionResponse{
		Plan:      provider.SubscriptionPlan,
		Price:     pricing.PlanPrice(provider.SubscriptionPlan),
		ExpiresAt: provider.SubscriptionExpiresAt,
		Features:  planFeatureNames(provider.SubscriptionPlan),
	}, nil
}

func planFeatureNames(plan models.SubscriptionPlan) []string {
	all := []pricing.PlanFeature{
		pricing.FeatureFeatured,
		pricing.FeaturePrioritySearch,
		pricing.FeatureHighlighted,
		pricing.FeatureAnalyticsAccess,
		pricing.FeatureCustomerSupport,
	}

	names := make([]string, 0, len(all))
	for _, f := range all {
		if pricing.HasPlanFeature(plan, f) {
			names = append(names, string(f))
		}
	}
	return names
}
