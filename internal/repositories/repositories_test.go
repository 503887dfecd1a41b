package repositories

import (
	"fmt"
	"testing"

	"homepro_backend/database"
	"homepro_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, id string, role models.UserRole, city string) *models.User {
	t.Helper()

	user := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "User " + id,
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "hash",
		Phone:        "555-0101",
		Role:         role,
		ZipCode:      "73301",
		City:         city,
		State:        "TX",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProvider(t *testing.T, db *gorm.DB, id, city string, activated bool, rating float64) *models.Provider {
	t.Helper()

	createUser(t, db, id, models.UserRoleProvider, city)
	provider := &models.Provider{
		UserID:           id,
		BusinessName:     "Business " + id,
		Rating:           rating,
		ProfileActivated: activated,
	}
	require.NoError(t, db.Create(provider).Error)
	return provider
}

func createCustomer(t *testing.T, db *gorm.DB, id, city string) *models.Customer {
	t.Helper()

	createUser(t, db, id, models.UserRoleCustomer, city)
	customer := &models.Customer{UserID: id}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createServiceRequest(t *testing.T, db *gorm.DB, customerID, city string) *models.ServiceRequest {
	t.Helper()

	service := &models.Service{ID: "svc-" + customerID + city, Name: "Plumbing", Category: "Home Repair", Icon: "water"}
	require.NoError(t, db.FirstOrCreate(service, models.Service{ID: service.ID}).Error)

	request := &models.ServiceRequest{
		CustomerID:  customerID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Description: "Fix the kitchen sink",
		ZipCode:     "73301",
		City:        city,
		State:       "TX",
		Status:      models.RequestStatusOpen,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

func createLead(t *testing.T, db *gorm.DB, customerID, city string) *models.Lead {
	t.Helper()

	request := createServiceRequest(t, db, customerID, city)
	lead := &models.Lead{
		ServiceRequestID: request.ID,
		CustomerID:       customerID,
		Price:            15.0,
		Status:           models.LeadStatusAvailable,
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}
