package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrServiceRequestNotFound = errors.New("service request not found")
)

type ServiceRequestRepository interface {
	// Catalog
	FindAllServices(db *gorm.DB) ([]models.Service, error)
	FindServiceByID(db *gorm.DB, id string) (*models.Service, error)
	FindServicesByCategory(db *gorm.DB, category string) ([]models.Service, error)

	// Requests
	CreateRequest(db *gorm.DB, request *models.ServiceRequest) error
	FindRequestByID(db *gorm.DB, id string) (*models.ServiceRequest, error)
	FindRequestsByCustomer(db *gorm.DB, customerID string) ([]models.ServiceRequest, error)
	FindOpenRequests(db *gorm.DB, city, state string, limit, offset int) ([]models.ServiceRequest, error)
	UpdateRequestStatus(db *gorm.DB, requestID string, status models.RequestStatus) error
}

type ServiceRequestRepositoryImpl struct{}

func NewServiceRequestRepository() ServiceRequestRepository {
	return &ServiceRequestRepositoryImpl{}
}

func (r *ServiceRequestRepositoryImpl) FindAllServices(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Order("category, name").Find(&services).Error
	return services, err
}

func (r *ServiceRequestRepositoryImpl) FindServiceByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRequestRepositoryImpl) FindServicesByCategory(db *gorm.DB, category string) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("category = ?", category).Order("name").Find(&services).Error
	return services, err
}

func (r *ServiceRequestRepositoryImpl) CreateRequest(db *gorm.DB, request *models.ServiceRequest) error {
	return db.Create(request).Error
}

func (r *ServiceRequestRepositoryImpl) FindRequestByID(db *gorm.DB, id string) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *ServiceRequestRepositoryImpl) FindRequestsByCustomer(db *gorm.DB, customerID string) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	err := db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *ServiceRequestRepositoryImpl) FindOpenRequests(db *gorm.DB, city, state string, limit, offset int) ([]models.ServiceRequest, error) {
	query := db.Where("status = ?", models.RequestStatusOpen)
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var requests []models.ServiceRequest
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, err
}

func (r *ServiceRequestRepositoryImpl) UpdateRequestStatus(db *gorm.DB, requestID string, status models.RequestStatus) error {
	result := db.Model(&models.ServiceRequest{}).Where("id = ?", requestID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceRequestNotFound
	}
	return nil
}
