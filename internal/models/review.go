package models

import "gorm.io/datatypes"

type Review struct {
	BaseModel
	ProviderID       string       `gorm:"type:uuid;not null;index" json:"provider_id"`
	CustomerID       string       `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName     string       `gorm:"not null" json:"customer_name"`
	CustomerImage    string       `json:"customer_image,omitempty"`
	Rating           float64      `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment          string       `gorm:"not null" json:"comment"`
	ServiceType      string       `gorm:"not null" json:"service_type"`
	ProviderResponse *string      `json:"provider_response,omitempty"`
	Disputed         bool         `gorm:"default:false" json:"disputed"`
	ReviewerType     ReviewerType `gorm:"type:varchar(20);not null;check:reviewer_type IN ('customer', 'provider')" json:"reviewer_type"`

	// Relations
	Provider Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// DisputeEvidence - доказательства провайдера при оспаривании отзыва.
// Attachments - JSON-массив URL вложений.
type DisputeEvidence struct {
	BaseModel
	ReviewID    string         `gorm:"type:uuid;not null;index" json:"review_id"`
	ProviderID  string         `gorm:"type:uuid;not null;index" json:"provider_id"`
	Description string         `gorm:"not null" json:"description"`
	Attachments datatypes.JSON `json:"attachments"`
	Status      DisputeStatus  `gorm:"type:varchar(20);default:'pending';check:status IN ('pending', 'approved', 'rejected')" json:"status"`

	// Relations
	Review   Review   `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
	Provider Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
}
