package models

import "time"

// Lead - ссылка на запрос клиента, продаваемая провайдерам
type Lead struct {
	BaseModel
	ServiceRequestID string     `gorm:"type:uuid;not null;index" json:"service_request_id"`
	CustomerID       string     `gorm:"type:uuid;not null;index" json:"customer_id"`
	Price            float64    `gorm:"not null" json:"price"`
	Status           LeadStatus `gorm:"type:varchar(20);not null;index;check:status IN ('available', 'purchased', 'expired')" json:"status"`
	PurchasedBy      *string    `gorm:"type:uuid;index" json:"purchased_by,omitempty"`
	PurchasedAt      *time.Time `json:"purchased_at,omitempty"`

	// Relations
	ServiceRequest ServiceRequest `gorm:"foreignKey:ServiceRequestID;constraint:OnDelete:CASCADE" json:"-"`
	Customer       Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// LeadPackageRow - каталог пакетов лидов в БД.
// Источник истины по ценам - internal/pricing, отсюда читают только сиды и отчеты.
type LeadPackageRow struct {
	ID                string          `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"not null" json:"name"`
	LeadsCount        int             `gorm:"not null" json:"leads_count"`
	Price             float64         `gorm:"not null" json:"price"`
	Duration          PackageDuration `gorm:"type:varchar(20);not null;check:duration IN ('single', 'weekly', 'monthly')" json:"duration"`
	SavingsPercentage float64         `json:"savings_percentage"`
}

func (LeadPackageRow) TableName() string {
	return "lead_packages"
}

type LeadPurchase struct {
	BaseModel
	ProviderID  string     `gorm:"type:uuid;not null;index" json:"provider_id"`
	PackageID   string     `gorm:"not null" json:"package_id"`
	LeadsCount  int        `gorm:"not null" json:"leads_count"`
	TotalPrice  float64    `gorm:"not null" json:"total_price"`
	PurchasedAt time.Time  `gorm:"not null" json:"purchased_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	// Relations
	Provider Provider       `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
	Package  LeadPackageRow `gorm:"foreignKey:PackageID" json:"-"`
}
