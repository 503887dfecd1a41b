package repositories

import (
	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

type GamificationRepository interface {
	FindRewardsByProvider(db *gorm.DB, providerID string) ([]models.GamificationReward, error)
	CreateReward(db *gorm.DB, reward *models.GamificationReward) error
	HasReward(db *gorm.DB, providerID string, rewardType models.RewardType) (bool, error)
}

type GamificationRepositoryImpl struct{}

func NewGamificationRepository() GamificationRepository {
	return &GamificationRepositoryImpl{}
}

func (r *GamificationRepositoryImpl) FindRewardsByProvider(db *gorm.DB, providerID string) ([]models.GamificationReward, error) {
	var rewards []models.GamificationReward
	err := db.Where("provider_id = ?", providerID).
		Order("awarded_at ASC").
		Find(&rewards).Error
	return rewards, err
}

func (r *GamificationRepositoryImpl) CreateReward(db *gorm.DB, reward *models.GamificationReward) error {
	return db.Create(reward).Error
}

// HasReward - выдавалась ли награда этого типа данному провайдеру.
// Награды одноразовые, на паре (provider_id, reward_type) уникальный индекс.
func (r *GamificationRepositoryImpl) HasReward(db *gorm.DB, providerID string, rewardType models.RewardType) (bool, error) {
	var count int64
	err := db.Model(&models.GamificationReward{}).
		Where("provider_id = ? AND reward_type = ?", providerID, rewardType).
		Count(&count).Error
	return count > 0, err
}
