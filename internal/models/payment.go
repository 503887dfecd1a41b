package models

type PaymentMethod struct {
	BaseModel
	UserID      string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        PaymentMethodType `gorm:"type:varchar(20);not null;check:type IN ('card', 'bank_account')" json:"type"`
	Last4       string            `gorm:"not null" json:"last4"`
	Brand       string            `json:"brand,omitempty"`
	ExpiryMonth int               `json:"expiry_month,omitempty"`
	ExpiryYear  int               `json:"expiry_year,omitempty"`
	IsDefault   bool              `gorm:"default:false" json:"is_default"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// PaymentTransaction - запись в леджере платежей.
// Шлюз симулируется, реальных вызовов провайдера нет.
type PaymentTransaction struct {
	BaseModel
	UserID          string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Currency        string        `gorm:"default:'USD'" json:"currency"`
	Type            PaymentType   `gorm:"type:varchar(20);not null;check:type IN ('lead_purchase', 'subscription', 'verification')" json:"type"`
	Status          PaymentStatus `gorm:"type:varchar(20);not null;check:status IN ('pending', 'completed', 'failed', 'refunded')" json:"status"`
	PaymentMethodID string        `gorm:"type:uuid;not null" json:"payment_method_id"`
	Description     string        `gorm:"not null" json:"description"`

	// Relations
	User          User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"-"`
}
