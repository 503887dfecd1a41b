package models

import "time"

// Service - статический каталог услуг
type Service struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`
	Icon     string `gorm:"not null" json:"icon"`
}

type ServiceRequest struct {
	BaseModel
	CustomerID    string        `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID     string        `gorm:"not null" json:"service_id"`
	ServiceName   string        `gorm:"not null" json:"service_name"`
	Description   string        `gorm:"not null" json:"description"`
	ZipCode       string        `gorm:"not null" json:"zip_code"`
	City          string        `gorm:"not null" json:"city"`
	State         string        `gorm:"not null" json:"state"`
	BudgetMin     *float64      `json:"budget_min,omitempty"`
	BudgetMax     *float64      `json:"budget_max,omitempty"`
	Status        RequestStatus `gorm:"type:varchar(20);not null;index;check:status IN ('open', 'in_progress', 'completed', 'cancelled')" json:"status"`
	ScheduledDate *time.Time    `json:"scheduled_date,omitempty"`

	// Relations
	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Service  Service  `gorm:"foreignKey:ServiceID" json:"-"`
}
