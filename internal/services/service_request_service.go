package services

import (
	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ServiceRequestService interface {
	GetServices(db *gorm.DB) ([]dto.ServiceResponse, error)
	CreateRequest(db *gorm.DB, customerID string, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	GetCustomerRequests(db *gorm.DB, customerID string) ([]dto.ServiceRequestResponse, error)
	UpdateRequestStatus(db *gorm.DB, customerID, requestID string, status models.RequestStatus) error
}

type ServiceRequestServiceImpl struct {
	requestRepo  repositories.ServiceRequestRepository
	customerRepo repositories.CustomerRepository
	leadRepo     repositories.LeadRepository
}

func NewServiceRequestService(
	requestRepo repositories.ServiceRequestRepository,
	customerRepo repositories.CustomerRepository,
	leadRepo repositories.LeadRepository,
) ServiceRequestService {
	return &ServiceRequestServiceImpl{
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		leadRepo:     leadRepo,
	}
}

func (s *ServiceRequestServiceImpl) GetServices(db *gorm.DB) ([]dto.ServiceResponse, error) {
	services, err := s.requestRepo.FindAllServices(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, dto.NewServiceResponse(&services[i]))
	}
	return responses, nil
}

// CreateRequest создает заявку клиента и одновременно лид для продажи
// провайдерам. Лид ценится как одиночная покупка из каталога.
func (s *ServiceRequestServiceImpl) CreateRequest(db *gorm.DB, customerID string, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	service, err := s.requestRepo.FindServiceByID(db, req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	request := &models.ServiceRequest{
		CustomerID:    customerID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		Description:   req.Description,
		ZipCode:       req.ZipCode,
		City:          req.City,
		State:         req.State,
		BudgetMin:     req.BudgetMin,
		BudgetMax:     req.BudgetMax,
		Status:        models.RequestStatusOpen,
		ScheduledDate: req.ScheduledDate,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.CreateRequest(tx, request); err != nil {
			return apperrors.DatabaseError(err)
		}

		lead := &models.Lead{
			ServiceRequestID: request.ID,
			CustomerID:       customerID,
			Price:            pricing.LeadPriceSingle,
			Status:           models.LeadStatusAvailable,
		}
		if err := s.leadRepo.CreateLead(tx, lead); err != nil {
			return apperrors.DatabaseError(err)
		}

		if err := s.customerRepo.IncrementRequestsCount(tx, customerID); err != nil {
			if apperrors.Is(err, repositories.ErrCustomerNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewServiceRequestResponse(request)
	return &resp, nil
}

func (s *ServiceRequestServiceImpl) GetCustomerRequests(db *gorm.DB, customerID string) ([]dto.ServiceRequestResponse, error) {
	requests, err := s.requestRepo.FindRequestsByCustomer(db, customerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, dto.NewServiceRequestResponse(&requests[i]))
	}
	return responses, nil
}

func (s *ServiceRequestServiceImpl) UpdateRequestStatus(db *gorm.DB, customerID, requestID string, status models.RequestStatus) error {
	request, err := s.requestRepo.FindRequestByID(db, requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if request.CustomerID != customerID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.requestRepo.UpdateRequestStatus(db, requestID, status); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
