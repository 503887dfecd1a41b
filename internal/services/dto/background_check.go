package dto

import (
	"time"

	"homepro_backend/internal/models"
)

// ConsentRequest - согласие провайдера на проверку биографии.
// Персональные данные нужны вендору проверки, наружу не отдаются.
type ConsentRequest struct {
	FullLegalName        string `json:"fullLegalName" validate:"required,min=2,max=200"`
	DateOfBirth          string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	SocialSecurityNumber string `json:"socialSecurityNumber" validate:"required,len=9,numeric"`
	DriversLicenseNumber string `json:"driversLicenseNumber" validate:"omitempty,max=30"`
	AgreedToTerms        bool   `json:"agreedToTerms" validate:"required,eq=true"`
}

type BackgroundCheckResponse struct {
	ID          string                       `json:"id"`
	Status      models.BackgroundCheckStatus `json:"status"`
	InitiatedAt time.Time                    `json:"initiatedAt"`
	CompletedAt *time.Time                   `json:"completedAt,omitempty"`
	CheckVendor string                       `json:"checkVendor,omitempty"`
}

func NewBackgroundCheckResponse(check *models.BackgroundCheck) BackgroundCheckResponse {
	return BackgroundCheckResponse{
		ID:          check.ID,
		Status:      check.Status,
		InitiatedAt: check.InitiatedAt,
		CompletedAt: check.CompletedAt,
		CheckVendor: check.CheckVendor,
	}
}
