package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestSpawnsLead(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedCustomer(t, db, "cust-q")
	service := &models.Service{ID: "s4", Name: "Plumbing", Category: "Home Repair", Icon: "water"}
	require.NoError(t, db.Create(service).Error)

	resp, err := container.ServiceRequestService.CreateRequest(db, "cust-q", &dto.CreateServiceRequestRequest{
		ServiceID:   "s4",
		Description: "Kitchen sink is leaking under the cabinet",
		ZipCode:     "73301",
		City:        "Austin",
		State:       "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, resp.Status)
	assert.Equal(t, "Plumbing", resp.ServiceName)

	// Заявка рождает доступный лид по цене одиночной покупки
	var lead models.Lead
	require.NoError(t, db.First(&lead, "service_request_id = ?", resp.ID).Error)
	assert.Equal(t, models.LeadStatusAvailable, lead.Status)
	assert.Equal(t, pricing.LeadPriceSingle, lead.Price)

	// Счетчик заявок клиента увеличен
	var customer models.Customer
	require.NoError(t, db.First(&customer, "user_id = ?", "cust-q").Error)
	assert.Equal(t, 1, customer.RequestsCount)
}

func TestCreateRequestUnknownService(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedCustomer(t, db, "cust-q")

	_, err := container.ServiceRequestService.CreateRequest(db, "cust-q", &dto.CreateServiceRequestRequest{
		ServiceID:   "missing",
		Description: "Kitchen sink is leaking under the cabinet",
		ZipCode:     "73301",
	})
	assert.Error(t, err)
}

func TestUpdateRequestStatusOwnership(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedCustomer(t, db, "cust-q")
	seedCustomer(t, db, "cust-other")
	service := &models.Service{ID: "s4", Name: "Plumbing", Category: "Home Repair", Icon: "water"}
	require.NoError(t, db.Create(service).Error)

	resp, err := container.ServiceRequestService.CreateRequest(db, "cust-q", &dto.CreateServiceRequestRequest{
		ServiceID:   "s4",
		Description: "Kitchen sink is leaking under the cabinet",
		ZipCode:     "73301",
	})
	require.NoError(t, err)

	// Чужую заявку менять нельзя
	err = container.ServiceRequestService.UpdateRequestStatus(db, "cust-other", resp.ID, models.RequestStatusCancelled)
	assert.Error(t, err)

	require.NoError(t, container.ServiceRequestService.UpdateRequestStatus(db, "cust-q", resp.ID, models.RequestStatusCancelled))

	var request models.ServiceRequest
	require.NoError(t, db.First(&request, "id = ?", resp.ID).Error)
	assert.Equal(t, models.RequestStatusCancelled, request.Status)
}
