package dto

import (
	"time"

	"homepro_backend/internal/models"
)

type CreateServiceRequestRequest struct {
	ServiceID     string     `json:"serviceId" validate:"required"`
	Description   string     `json:"description" validate:"required,min=10,max=5000"`
	ZipCode       string     `json:"zipCode" validate:"required,max=10"`
	City          string     `json:"city" validate:"omitempty,max=100"`
	State         string     `json:"state" validate:"omitempty,max=50"`
	BudgetMin     *float64   `json:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax     *float64   `json:"budgetMax" validate:"omitempty,gte=0"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

type ServiceRequestResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customerId"`
	ServiceID     string               `json:"serviceId"`
	ServiceName   string               `json:"serviceName"`
	Description   string               `json:"description"`
	ZipCode       string               `json:"zipCode"`
	City          string               `json:"city,omitempty"`
	State         string               `json:"state,omitempty"`
	BudgetMin     *float64             `json:"budgetMin,omitempty"`
	BudgetMax     *float64             `json:"budgetMax,omitempty"`
	Status        models.RequestStatus `json:"status"`
	ScheduledDate *time.Time           `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type ServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
}

func NewServiceRequestResponse(r *models.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		Description:   r.Description,
		ZipCode:       r.ZipCode,
		City:          r.City,
		State:         r.State,
		BudgetMin:     r.BudgetMin,
		BudgetMax:     r.BudgetMax,
		Status:        r.Status,
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     r.CreatedAt,
	}
}

func NewServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Icon:     s.Icon,
	}
}
