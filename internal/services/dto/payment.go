package dto

import (
	"time"

	"homepro_backend/internal/models"
)

type AddPaymentMethodRequest struct {
	Type        models.PaymentMethodType `json:"type" validate:"required,oneof=card bank_account"`
	CardNumber  string                   `json:"cardNumber" validate:"required_if=Type card,omitempty,len=16,numeric"`
	Brand       string                   `json:"brand" validate:"omitempty,max=30"`
	ExpiryMonth int                      `json:"expiryMonth" validate:"required_if=Type card,omitempty,gte=1,lte=12"`
	ExpiryYear  int                      `json:"expiryYear" validate:"required_if=Type card,omitempty,gte=2024"`
	MakeDefault bool                     `json:"makeDefault"`
}

type PaymentMethodResponse struct {
	ID          string                   `json:"id"`
	Type        models.PaymentMethodType `json:"type"`
	Last4       string                   `json:"last4"`
	Brand       string                   `json:"brand,omitempty"`
	ExpiryMonth int                      `json:"expiryMonth,omitempty"`
	ExpiryYear  int                      `json:"expiryYear,omitempty"`
	IsDefault   bool                     `json:"isDefault"`
}

type TransactionResponse struct {
	ID          string               `json:"id"`
	Amount      float64              `json:"amount"`
	Currency    string               `json:"currency"`
	Type        models.PaymentType   `json:"type"`
	Status      models.PaymentStatus `json:"status"`
	Description string               `json:"description,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// SubscribeRequest - подписка на платный план
type SubscribeRequest struct {
	Plan            models.SubscriptionPlan `json:"plan" validate:"required,oneof=bronze silver gold"`
	PaymentMethodID string                  `json:"paymentMethodId" validate:"omitempty"`
}

type SubscriptionResponse struct {
	Plan         models.SubscriptionPlan `json:"plan"`
	Price        float64                 `json:"price"`
	GatewayFee   float64                 `json:"gatewayFee"`
	TotalCharged float64                 `json:"totalCharged"`
	ExpiresAt    *time.Time              `json:"expiresAt,omitempty"`
	Features     []string                `json:"features"`
}

func NewPaymentMethodResponse(m *models.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          m.ID,
		Type:        m.Type,
		Last4:       m.Last4,
		Brand:       m.Brand,
		ExpiryMonth: m.ExpiryMonth,
		ExpiryYear:  m.ExpiryYear,
		IsDefault:   m.IsDefault,
	}
}

func NewTransactionResponse(t *models.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Type:        t.Type,
		Status:      t.Status,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
