package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
)

type PaymentRepository interface {
	CreateMethod(db *gorm.DB, method *models.PaymentMethod) error
	FindMethodByID(db *gorm.DB, id string) (*models.PaymentMethod, error)
	FindMethodsByUser(db *gorm.DB, userID string) ([]models.PaymentMethod, error)
	FindDefaultMethod(db *gorm.DB, userID string) (*models.PaymentMethod, error)
	SetDefaultMethod(db *gorm.DB, userID, methodID string) error
	DeleteMethod(db *gorm.DB, id string) error

	CreateTransaction(db *gorm.DB, txn *models.PaymentTransaction) error
	FindTransactionsByUser(db *gorm.DB, userID string, limit, offset int) ([]models.PaymentTransaction, error)
	UpdateTransactionStatus(db *gorm.DB, txnID string, status models.PaymentStatus) error
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) CreateMethod(db *gorm.DB, method *models.PaymentMethod) error {
	return db.Create(method).Error
}

func (r *PaymentRepositoryImpl) FindMethodByID(db *gorm.DB, id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := db.First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return &method, nil
}

func (r *PaymentRepositoryImpl) FindMethodsByUser(db *gorm.DB, userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&methods).Error
	return methods, err
}

func (r *PaymentRepositoryImpl) FindDefaultMethod(db *gorm.DB, userID string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := db.Where("user_id = ? AND is_default = ?", userID, true).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return &method, nil
}

// SetDefaultMethod делает метод дефолтным, снимая флаг с остальных
func (r *PaymentRepositoryImpl) SetDefaultMethod(db *gorm.DB, userID, methodID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentMethod{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.PaymentMethod{}).
			Where("id = ? AND user_id = ?", methodID, userID).
			Updates(map[string]interface{}{
				"is_default": true,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPaymentMethodNotFound
		}
		return nil
	})
}

func (r *PaymentRepositoryImpl) DeleteMethod(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.PaymentMethod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentMethodNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) CreateTransaction(db *gorm.DB, txn *models.PaymentTransaction) error {
	return db.Create(txn).Error
}

func (r *PaymentRepositoryImpl) FindTransactionsByUser(db *gorm.DB, userID string, limit, offset int) ([]models.PaymentTransaction, error) {
	var txns []models.PaymentTransaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&txns).Error
	return txns, err
}

func (r *PaymentRepositoryImpl) UpdateTransactionStatus(db *gorm.DB, txnID string, status models.PaymentStatus) error {
	result := db.Model(&models.PaymentTransaction{}).Where("id = ?", txnID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
