package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository interface {
	Create(db *gorm.DB, customer *models.Customer) error
	FindByUserID(db *gorm.DB, userID string) (*models.Customer, error)
	Update(db *gorm.DB, userID string, fields map[string]interface{}) error
	IncrementRequestsCount(db *gorm.DB, userID string) error
	UpdateRatingStats(db *gorm.DB, userID string, rating float64, reviewCount int) error
}

type CustomerRepositoryImpl struct{}

func NewCustomerRepository() CustomerRepository {
	return &CustomerRepositoryImpl{}
}

func (r *CustomerRepositoryImpl) Create(db *gorm.DB, customer *models.Customer) error {
	return db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Customer, error) {
	var customer models.Customer
	err := db.First(&customer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) Update(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := db.Model(&models.Customer{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) IncrementRequestsCount(db *gorm.DB, userID string) error {
	result := db.Model(&models.Customer{}).Where("user_id = ?", userID).
		Update("requests_count", gorm.Expr("requests_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// UpdateRatingStats переписывает агрегаты рейтинга заказчика
// (отзывы, которые провайдеры оставили о нем)
func (r *CustomerRepositoryImpl) UpdateRatingStats(db *gorm.DB, userID string, rating float64, reviewCount int) error {
	result := db.Model(&models.Customer{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
