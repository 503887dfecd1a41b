package models

import "time"

// GamificationReward - разовая выдача бонусных лидов.
// Существование записи с парой (providerId, rewardType) запрещает повторную выдачу.
type GamificationReward struct {
	BaseModel
	ProviderID string     `gorm:"type:uuid;not null;index:idx_reward_provider_type,unique" json:"provider_id"`
	RewardType RewardType `gorm:"type:varchar(30);not null;index:idx_reward_provider_type,unique;check:reward_type IN ('7reviews_4stars', '10reviews_5stars')" json:"reward_type"`
	BonusLeads int        `gorm:"not null" json:"bonus_leads"`
	AwardedAt  time.Time  `gorm:"not null" json:"awarded_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`

	// Relations
	Provider Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
}
