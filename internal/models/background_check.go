package models

import (
	"time"

	"gorm.io/datatypes"
)

// BackgroundCheck - результат проверки внешним провайдером.
// Results хранит сырой ответ провайдера как JSON.
type BackgroundCheck struct {
	BaseModel
	ProviderID  string                `gorm:"type:uuid;not null;index" json:"provider_id"`
	Status      BackgroundCheckStatus `gorm:"type:varchar(20);not null;check:status IN ('pending', 'in_progress', 'clear', 'flagged', 'rejected', 'expired')" json:"status"`
	InitiatedAt time.Time             `gorm:"not null" json:"initiated_at"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
	CheckVendor string                `gorm:"not null" json:"check_vendor"`
	Results     datatypes.JSON        `json:"results"`

	// Relations
	Provider Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
}

// BackgroundCheckConsent - согласие провайдера на проверку (вход внешней проверки)
type BackgroundCheckConsent struct {
	ProviderID           string    `gorm:"type:uuid;primaryKey" json:"provider_id"`
	ConsentGivenAt       time.Time `gorm:"not null" json:"consent_given_at"`
	IPAddress            string    `gorm:"not null" json:"ip_address"`
	FullLegalName        string    `gorm:"not null" json:"full_legal_name"`
	DateOfBirth          string    `gorm:"not null" json:"date_of_birth"`
	SocialSecurityNumber string    `gorm:"not null" json:"-"`
	DriversLicenseNumber string    `json:"drivers_license_number,omitempty"`
	AgreedToTerms        bool      `gorm:"not null" json:"agreed_to_terms"`

	// Relations
	Provider Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
}
