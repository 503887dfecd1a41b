package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Phone        string   `gorm:"not null" json:"phone"`
	Role         UserRole `gorm:"type:varchar(20);not null;check:role IN ('customer', 'provider')" json:"role"`
	ZipCode      string   `gorm:"not null" json:"zip_code"`
	City         string   `gorm:"index;not null" json:"city"`
	State        string   `gorm:"not null" json:"state"`
	ProfileImage string   `json:"profile_image,omitempty"`

	// Relations
	Provider *Provider `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Customer *Customer `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
