package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLeadNotFound        = errors.New("lead not found")
	ErrLeadNotAvailable    = errors.New("lead is not available")
	ErrLeadPackageNotFound = errors.New("lead package not found")
)

type LeadRepository interface {
	CreateLead(db *gorm.DB, lead *models.Lead) error
	FindLeadByID(db *gorm.DB, id string) (*models.Lead, error)
	FindAvailableLeads(db *gorm.DB, city, state string, limit, offset int) ([]models.Lead, error)
	FindLeadsByProvider(db *gorm.DB, providerID string) ([]models.Lead, error)
	MarkPurchased(db *gorm.DB, leadID, providerID string) error
	ExpireLeadsOlderThan(db *gorm.DB, cutoff time.Time) (int64, error)

	// Packages and purchases
	FindAllPackages(db *gorm.DB) ([]models.LeadPackageRow, error)
	FindPackageByID(db *gorm.DB, id string) (*models.LeadPackageRow, error)
	CreatePurchase(db *gorm.DB, purchase *models.LeadPurchase) error
	FindPurchasesByProvider(db *gorm.DB, providerID string) ([]models.LeadPurchase, error)
}

type LeadRepositoryImpl struct{}

func NewLeadRepository() LeadRepository {
	return &LeadRepositoryImpl{}
}

func (r *LeadRepositoryImpl) CreateLead(db *gorm.DB, lead *models.Lead) error {
	return db.Create(lead).Error
}

func (r *LeadRepositoryImpl) FindLeadByID(db *gorm.DB, id string) (*models.Lead, error) {
	var lead models.Lead
	err := db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// FindAvailableLeads возвращает доступные лиды; география берется из заявки
func (r *LeadRepositoryImpl) FindAvailableLeads(db *gorm.DB, city, state string, limit, offset int) ([]models.Lead, error) {
	query := db.Model(&models.Lead{}).
		Joins("JOIN service_requests ON service_requests.id = leads.service_request_id").
		Where("leads.status = ?", models.LeadStatusAvailable)
	if city != "" {
		query = query.Where("service_requests.city = ?", city)
	}
	if state != "" {
		query = query.Where("service_requests.state = ?", state)
	}

	var leads []models.Lead
	err := query.Order("leads.created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, err
}

func (r *LeadRepositoryImpl) FindLeadsByProvider(db *gorm.DB, providerID string) ([]models.Lead, error) {
	var leads []models.Lead
	err := db.Where("purchased_by = ?", providerID).
		Order("purchased_at DESC").
		Find(&leads).Error
	return leads, err
}

// MarkPurchased переводит лид в purchased. Guard по статусу в WHERE
// исключает двойную покупку одного лида.
func (r *LeadRepositoryImpl) MarkPurchased(db *gorm.DB, leadID, providerID string) error {
	now := time.Now()
	result := db.Model(&models.Lead{}).
		Where("id = ? AND status = ?", leadID, models.LeadStatusAvailable).
		Updates(map[string]interface{}{
			"status":       models.LeadStatusPurchased,
			"purchased_by": providerID,
			"purchased_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var lead models.Lead
		if err := db.First(&lead, "id = ?", leadID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeadNotFound
			}
			return err
		}
		return ErrLeadNotAvailable
	}
	return nil
}

// ExpireLeadsOlderThan переводит залежавшиеся доступные лиды в expired
func (r *LeadRepositoryImpl) ExpireLeadsOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Model(&models.Lead{}).
		Where("status = ? AND created_at < ?", models.LeadStatusAvailable, cutoff).
		Updates(map[string]interface{}{
			"status":     models.LeadStatusExpired,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *LeadRepositoryImpl) FindAllPackages(db *gorm.DB) ([]models.LeadPackageRow, error) {
	var packages []models.LeadPackageRow
	err := db.Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *LeadRepositoryImpl) FindPackageByID(db *gorm.DB, id string) (*models.LeadPackageRow, error) {
	var pkg models.LeadPackageRow
	err := db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *LeadRepositoryImpl) CreatePurchase(db *gorm.DB, purchase *models.LeadPurchase) error {
	return db.Create(purchase).Error
}

func (r *LeadRepositoryImpl) FindPurchasesByProvider(db *gorm.DB, providerID string) ([]models.LeadPurchase, error) {
	var purchases []models.LeadPurchase
	err := db.Where("provider_id = ?", providerID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	return purchases, err
}
