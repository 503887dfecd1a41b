package models

import "time"

// Customer - сателлитная таблица 1:1 к users для роли customer
type Customer struct {
	UserID        string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	RequestsCount int       `gorm:"default:0" json:"requests_count"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   int       `gorm:"default:0" json:"review_count"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
