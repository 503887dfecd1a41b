package dto

import (
	"time"

	"homepro_backend/internal/models"
)

type LeadPackageResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	LeadsCount        int     `json:"leadsCount"`
	Price             float64 `json:"price"`
	PricePerLead      float64 `json:"pricePerLead"`
	Duration          string  `json:"duration"`
	SavingsPercentage float64 `json:"savingsPercentage"`
	Savings           float64 `json:"savings"`
}

type PurchasePackageRequest struct {
	PackageID       string `json:"packageId" validate:"required"`
	PaymentMethodID string `json:"paymentMethodId" validate:"omitempty"`
}

type PurchasePackageResponse struct {
	PurchaseID     string     `json:"purchaseId"`
	LeadsCount     int        `json:"leadsCount"`
	TotalPrice     float64    `json:"totalPrice"`
	GatewayFee     float64    `json:"gatewayFee"`
	TotalCharged   float64    `json:"totalCharged"`
	AvailableLeads int        `json:"availableLeads"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

type LeadResponse struct {
	ID               string            `json:"id"`
	ServiceRequestID string            `json:"serviceRequestId"`
	CustomerID       string            `json:"customerId"`
	Price            float64           `json:"price"`
	Status           models.LeadStatus `json:"status"`
	PurchasedAt      *time.Time        `json:"purchasedAt,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
}
