package models

import "time"

// Provider - сателлитная таблица 1:1 к users для роли provider.
// Инвариант: ProfileActivated == false, пока BackgroundCheckStatus != clear.
type Provider struct {
	UserID                string                `gorm:"type:uuid;primaryKey" json:"user_id"`
	BusinessName          string                `gorm:"not null" json:"business_name"`
	PriceRangeMin         float64               `gorm:"not null;default:0" json:"price_range_min"`
	PriceRangeMax         float64               `gorm:"not null;default:0" json:"price_range_max"`
	Rating                float64               `gorm:"default:0" json:"rating"`
	ReviewCount           int                   `gorm:"default:0" json:"review_count"`
	Level                 int                   `gorm:"default:1;check:level IN (1, 2, 3)" json:"level"`
	IsVerified            bool                  `gorm:"default:false" json:"is_verified"`
	HasInsurance          bool                  `gorm:"default:false" json:"has_insurance"`
	Bio                   string                `json:"bio"`
	Experience            string                `json:"experience"`
	SubscriptionPlan      SubscriptionPlan      `gorm:"type:varchar(20);default:'none';check:subscription_plan IN ('none', 'bronze', 'silver', 'gold')" json:"subscription_plan"`
	SubscriptionExpiresAt *time.Time            `json:"subscription_expires_at,omitempty"`
	AvailableLeads        int                   `gorm:"default:0" json:"available_leads"`
	CompletedJobs         int                   `gorm:"default:0" json:"completed_jobs"`
	BonusLeads            int                   `gorm:"default:0" json:"bonus_leads"`
	CustomerRating        *float64              `json:"customer_rating,omitempty"`
	BackgroundCheckStatus BackgroundCheckStatus `gorm:"type:varchar(20);default:'pending';check:background_check_status IN ('pending', 'in_progress', 'clear', 'flagged', 'rejected', 'expired')" json:"background_check_status"`
	BackgroundCheckDate   *time.Time            `json:"background_check_date,omitempty"`
	ProfileActivated      bool                  `gorm:"default:false" json:"profile_activated"`
	UpdatedAt             time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User            User                     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Services        []ProviderService        `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"services"`
	PortfolioImages []ProviderPortfolioImage `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"portfolio_images"`
	Reviews         []Review                 `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProviderService - имя услуги провайдера.
// В исходной схеме services хранились JSON-строкой в колонке;
// здесь это дочерняя таблица ради ссылочной целостности.
type ProviderService struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ProviderID  string `gorm:"type:uuid;not null;index" json:"-"`
	ServiceName string `gorm:"not null" json:"service_name"`
}

// ProviderPortfolioImage - элемент портфолио (та же история, что и услуги)
type ProviderPortfolioImage struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ProviderID string `gorm:"type:uuid;not null;index" json:"-"`
	ImageURL   string `gorm:"not null" json:"image_url"`
	Position   int    `gorm:"default:0" json:"position"`
}

// ServiceNames собирает имена услуг провайдера в slice строк
func (p *Provider) ServiceNames() []string {
	names := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		names = append(names, s.ServiceName)
	}
	return names
}

// PortfolioURLs собирает URL изображений портфолио
func (p *Provider) PortfolioURLs() []string {
	urls := make([]string, 0, len(p.PortfolioImages))
	for _, img := range p.PortfolioImages {
		urls = append(urls, img.ImageURL)
	}
	return urls
}
