package dto

import (
	"time"

	"homepro_backend/internal/models"
)

// AccountResponse - внешнее представление аккаунта.
// Ровно один из Provider/Customer не nil, по роли.
type AccountResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone,omitempty"`
	Role         models.UserRole   `json:"role"`
	ZipCode      string            `json:"zipCode,omitempty"`
	City         string            `json:"city,omitempty"`
	State        string            `json:"state,omitempty"`
	ProfileImage string            `json:"profileImage,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	Provider     *ProviderProfile  `json:"provider,omitempty"`
	Customer     *CustomerProfile  `json:"customer,omitempty"`
}

type ProviderProfile struct {
	BusinessName          string                       `json:"businessName"`
	Services              []string                     `json:"services"`
	PriceRangeMin         float64                      `json:"priceRangeMin"`
	PriceRangeMax         float64                      `json:"priceRangeMax"`
	Rating                float64                      `json:"rating"`
	ReviewCount           int                          `json:"reviewCount"`
	Level                 int                          `json:"level"`
	IsVerified            bool                         `json:"isVerified"`
	HasInsurance          bool                         `json:"hasInsurance"`
	Bio                   string                       `json:"bio,omitempty"`
	Experience            string                       `json:"experience,omitempty"`
	PortfolioImages       []string                     `json:"portfolioImages"`
	SubscriptionPlan      models.SubscriptionPlan      `json:"subscriptionPlan"`
	SubscriptionExpiresAt *time.Time                   `json:"subscriptionExpiresAt,omitempty"`
	AvailableLeads        int                          `json:"availableLeads"`
	BonusLeads            int                          `json:"bonusLeads"`
	CompletedJobs         int                          `json:"completedJobs"`
	CustomerRating        *float64                     `json:"customerRating,omitempty"`
	BackgroundCheckStatus models.BackgroundCheckStatus `json:"backgroundCheckStatus"`
	ProfileActivated      bool                         `json:"profileActivated"`
}

type CustomerProfile struct {
	RequestsCount int      `json:"requestsCount"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount"`
}

// UpdateUserRequest - частичное обновление: nil-поля не трогаются
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	ZipCode      *string `json:"zipCode" validate:"omitempty,max=10"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=50"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

type UpdateProviderRequest struct {
	BusinessName    *string   `json:"businessName" validate:"omitempty,max=200"`
	Services        *[]string `json:"services" validate:"omitempty,dive,min=1"`
	PriceRangeMin   *float64  `json:"priceRangeMin" validate:"omitempty,gte=0"`
	PriceRangeMax   *float64  `json:"priceRangeMax" validate:"omitempty,gte=0"`
	Bio             *string   `json:"bio" validate:"omitempty,max=2000"`
	Experience      *string   `json:"experience" validate:"omitempty,max=100"`
	HasInsurance    *bool     `json:"hasInsurance"`
	PortfolioImages *[]string `json:"portfolioImages" validate:"omitempty,dive,url"`
}

// NewAccountResponse собирает внешнее представление из tagged-union аккаунта
func NewAccountResponse(account *models.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:           account.User.ID,
		Name:         account.User.Name,
		Email:        account.User.Email,
		Phone:        account.User.Phone,
		Role:         account.User.Role,
		ZipCode:      account.User.ZipCode,
		City:         account.User.City,
		State:        account.User.State,
		ProfileImage: account.User.ProfileImage,
		CreatedAt:    account.User.CreatedAt,
	}

	if account.Provider != nil {
		p := account.Provider
		resp.Provider = &ProviderProfile{
			BusinessName:          p.BusinessName,
			Services:              p.ServiceNames(),
			PriceRangeMin:         p.PriceRangeMin,
			PriceRangeMax:         p.PriceRangeMax,
			Rating:                p.Rating,
			ReviewCount:           p.ReviewCount,
			Level:                 p.Level,
			IsVerified:            p.IsVerified,
			HasInsurance:          p.HasInsurance,
			Bio:                   p.Bio,
			Experience:            p.Experience,
			PortfolioImages:       p.PortfolioURLs(),
			SubscriptionPlan:      p.SubscriptionPlan,
			SubscriptionExpiresAt: p.SubscriptionExpiresAt,
			AvailableLeads:        p.AvailableLeads,
			BonusLeads:            p.BonusLeads,
			CompletedJobs:         p.CompletedJobs,
			CustomerRating:        p.CustomerRating,
			BackgroundCheckStatus: p.BackgroundCheckStatus,
			ProfileActivated:      p.ProfileActivated,
		}
	}

	if account.Customer != nil {
		c := account.Customer
		resp.Customer = &CustomerProfile{
			RequestsCount: c.RequestsCount,
			Rating:        c.Rating,
			ReviewCount:   c.ReviewCount,
		}
	}

	return resp
}
