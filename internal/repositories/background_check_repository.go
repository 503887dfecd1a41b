package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBackgroundCheckNotFound = errors.New("background check not found")
	ErrConsentNotFound         = errors.New("background check consent not found")
)

type BackgroundCheckRepository interface {
	CreateConsent(db *gorm.DB, consent *models.BackgroundCheckConsent) error
	FindConsent(db *gorm.DB, providerID string) (*models.BackgroundCheckConsent, error)

	CreateCheck(db *gorm.DB, check *models.BackgroundCheck) error
	FindLatestByProvider(db *gorm.DB, providerID string) (*models.BackgroundCheck, error)
	CompleteCheck(db *gorm.DB, checkID string, status models.BackgroundCheckStatus, results []byte) error
	FindStaleChecks(db *gorm.DB, olderThan time.Time) ([]models.BackgroundCheck, error)
}

type BackgroundCheckRepositoryImpl struct{}

func NewBackgroundCheckRepository() BackgroundCheckRepository {
	return &BackgroundCheckRepositoryImpl{}
}

func (r *BackgroundCheckRepositoryImpl) CreateConsent(db *gorm.DB, consent *models.BackgroundCheckConsent) error {
	return db.Create(consent).Error
}

func (r *BackgroundCheckRepositoryImpl) FindConsent(db *gorm.DB, providerID string) (*models.BackgroundCheckConsent, error) {
	var consent models.BackgroundCheckConsent
	err := db.First(&consent, "provider_id = ?", providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsentNotFound
		}
		return nil, err
	}
	return &consent, nil
}

func (r *BackgroundCheckRepositoryImpl) CreateCheck(db *gorm.DB, check *models.BackgroundCheck) error {
	return db.Create(check).Error
}

func (r *BackgroundCheckRepositoryImpl) FindLatestByProvider(db *gorm.DB, providerID string) (*models.BackgroundCheck, error) {
	var check models.BackgroundCheck
	err := db.Where("provider_id = ?", providerID).
		Order("initiated_at DESC").
		First(&check).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBackgroundCheckNotFound
		}
		return nil, err
	}
	return &check, nil
}

// CompleteCheck фиксирует итог проверки вместе с сырым ответом вендора
func (r *BackgroundCheckRepositoryImpl) CompleteCheck(db *gorm.DB, checkID string, status models.BackgroundCheckStatus, results []byte) error {
	now := time.Now()
	result := db.Model(&models.BackgroundCheck{}).Where("id = ?", checkID).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": now,
		"results":      results,
		"updated_at":   now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBackgroundCheckNotFound
	}
	return nil
}

// FindStaleChecks возвращает незавершенные проверки старше указанного времени
func (r *BackgroundCheckRepositoryImpl) FindStaleChecks(db *gorm.DB, olderThan time.Time) ([]models.BackgroundCheck, error) {
	var checks []models.BackgroundCheck
	err := db.Where("status IN ? AND initiated_at < ?",
		[]models.BackgroundCheckStatus{models.BackgroundCheckPending, models.BackgroundCheckInProgress},
		olderThan).
		Find(&checks).Error
	return checks, err
}
