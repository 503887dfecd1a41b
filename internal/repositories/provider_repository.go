package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrNoLeadsLeft      = errors.New("no leads left on balance")
)

// ProviderFilter - критерии выборки для списка провайдеров.
// Limit <= 0 трактуется как значение по умолчанию (50).
type ProviderFilter struct {
	City         string
	State        string
	ServiceName  string
	MinRating    *float64
	VerifiedOnly bool
	Limit        int
	Offset       int
}

const defaultProviderPageSize = 50

type ProviderRepository interface {
	Create(db *gorm.DB, provider *models.Provider) error
	FindByUserID(db *gorm.DB, userID string) (*models.Provider, error)
	FindProviders(db *gorm.DB, filter ProviderFilter) ([]models.Provider, int64, error)
	Update(db *gorm.DB, userID string, fields map[string]interface{}) error
	ReplaceServices(db *gorm.DB, userID string, serviceNames []string) error
	ReplacePortfolio(db *gorm.DB, userID string, imageURLs []string) error
	AddPortfolioImage(db *gorm.DB, userID string, imageURL string) (*models.ProviderPortfolioImage, error)
	RemovePortfolioImage(db *gorm.DB, userID string, imageID uint) (*models.ProviderPortfolioImage, error)
	AddAvailableLeads(db *gorm.DB, userID string, count int) error
	AddBonusLeads(db *gorm.DB, userID string, count int) error
	ConsumeLead(db *gorm.DB, userID string) error
	UpdateRatingStats(db *gorm.DB, userID string, rating float64, reviewCount int, level int) error
}

type ProviderRepositoryImpl struct{}

func NewProviderRepository() ProviderRepository {
	return &ProviderRepositoryImpl{}
}

func (r *ProviderRepositoryImpl) Create(db *gorm.DB, provider *models.Provider) error {
	return db.Create(provider).Error
}

func (r *ProviderRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Provider, error) {
	var provider models.Provider
	err := db.
		Preload("Services").
		Preload("PortfolioImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&provider, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

// FindProviders возвращает страницу провайдеров и общее число подходящих.
// Город и штат лежат в users, поэтому нужен JOIN.
func (r *ProviderRepositoryImpl) FindProviders(db *gorm.DB, filter ProviderFilter) ([]models.Provider, int64, error) {
	query := db.Model(&models.Provider{}).
		Joins("JOIN users ON users.id = providers.user_id").
		Where("providers.profile_activated = ?", true)

	if filter.City != "" {
		query = query.Where("users.city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("users.state = ?", filter.State)
	}
	if filter.ServiceName != "" {
		query = query.Where(
			"providers.user_id IN (?)",
			db.Model(&models.ProviderService{}).
				Select("provider_id").
				Where("service_name = ?", filter.ServiceName),
		)
	}
	if filter.MinRating != nil {
		query = query.Where("providers.rating >= ?", *filter.MinRating)
	}
	if filter.VerifiedOnly {
		query = query.Where("providers.is_verified = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProviderPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var providers []models.Provider
	err := query.
		Preload("User").
		Preload("Services").
		Preload("PortfolioImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("providers.rating DESC").
		Limit(limit).Offset(offset).
		Find(&providers).Error

	return providers, total, err
}

func (r *ProviderRepositoryImpl) Update(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := db.Model(&models.Provider{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// ReplaceServices полностью заменяет список услуг провайдера
func (r *ProviderRepositoryImpl) ReplaceServices(db *gorm.DB, userID string, serviceNames []string) error {
	if err := db.Where("provider_id = ?", userID).Delete(&models.ProviderService{}).Error; err != nil {
		return err
	}
	if len(serviceNames) == 0 {
		return nil
	}

	rows := make([]models.ProviderService, 0, len(serviceNames))
	for _, name := range serviceNames {
		rows = append(rows, models.ProviderService{ProviderID: userID, ServiceName: name})
	}
	return db.Create(rows).Error
}

// ReplacePortfolio полностью заменяет портфолио, позиции идут по порядку списка
func (r *ProviderRepositoryImpl) ReplacePortfolio(db *gorm.DB, userID string, imageURLs []string) error {
	if err := db.Where("provider_id = ?", userID).Delete(&models.ProviderPortfolioImage{}).Error; err != nil {
		return err
	}
	if len(imageURLs) == 0 {
		return nil
	}

	rows := make([]models.ProviderPortfolioImage, 0, len(imageURLs))
	for i, url := range imageURLs {
		rows = append(rows, models.ProviderPortfolioImage{
			ProviderID: userID,
			ImageURL:   url,
			Position:   i,
		})
	}
	return db.Create(rows).Error
}

// AddPortfolioImage добавляет изображение в конец портфолио
func (r *ProviderRepositoryImpl) AddPortfolioImage(db *gorm.DB, userID string, imageURL string) (*models.ProviderPortfolioImage, error) {
	var maxPosition int
	if err := db.Model(&models.ProviderPortfolioImage{}).
		Where("provider_id = ?", userID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition).Error; err != nil {
		return nil, err
	}

	row := &models.ProviderPortfolioImage{
		ProviderID: userID,
		ImageURL:   imageURL,
		Position:   maxPosition + 1,
	}
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ProviderRepositoryImpl) RemovePortfolioImage(db *gorm.DB, userID string, imageID uint) (*models.ProviderPortfolioImage, error) {
	var row models.ProviderPortfolioImage
	err := db.Where("id = ? AND provider_id = ?", imageID, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if err := db.Delete(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ProviderRepositoryImpl) AddAvailableLeads(db *gorm.DB, userID string, count int) error {
	result := db.Model(&models.Provider{}).Where("user_id = ?", userID).
		Update("available_leads", gorm.Expr("available_leads + ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepositoryImpl) AddBonusLeads(db *gorm.DB, userID string, count int) error {
	result := db.Model(&models.Provider{}).Where("user_id = ?", userID).
		Update("bonus_leads", gorm.Expr("bonus_leads + ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// ConsumeLead списывает один лид с баланса: сначала бонусные, потом купленные.
// Guard в WHERE делает списание атомарным при конкурентных покупках.
func (r *ProviderRepositoryImpl) ConsumeLead(db *gorm.DB, userID string) error {
	result := db.Model(&models.Provider{}).
		Where("user_id = ? AND bonus_leads > 0", userID).
		Update("bonus_leads", gorm.Expr("bonus_leads - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	result = db.Model(&models.Provider{}).
		Where("user_id = ? AND available_leads > 0", userID).
		Update("available_leads", gorm.Expr("available_leads - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoLeadsLeft
	}
	return nil
}

// UpdateRatingStats переписывает агрегаты рейтинга и уровень провайдера
func (r *ProviderRepositoryImpl) UpdateRatingStats(db *gorm.DB, userID string, rating float64, reviewCount int, level int) error {
	result := db.Model(&models.Provider{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"rating":       rating,
		"review_count": reviewCount,
		"level":        level,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}
