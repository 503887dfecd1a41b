package services

import (
	"fmt"
	"testing"

	"homepro_backend/database"
	"homepro_backend/internal/email"
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"

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

func newTestContainer() *ServiceContainer {
	return NewServiceContainer(email.NewMockProvider(), nil, nil)
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "User " + id,
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "hash",
		Phone:        "555-0101",
		Role:         role,
		ZipCode:      "73301",
		City:         "Austin",
		State:        "TX",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProvider(t *testing.T, db *gorm.DB, id string, activated bool) *models.Provider {
	t.Helper()

	seedUser(t, db, id, models.UserRoleProvider)
	provider := &models.Provider{
		UserID:           id,
		BusinessName:     "Business " + id,
		Level:            1,
		ProfileActivated: activated,
	}
	if activated {
		provider.BackgroundCheckStatus = models.BackgroundCheckClear
	}
	require.NoError(t, db.Create(provider).Error)
	return provider
}

func seedCustomer(t *testing.T, db *gorm.DB, id string) *models.Customer {
	t.Helper()

	seedUser(t, db, id, models.UserRoleCustomer)
	customer := &models.Customer{UserID: id}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

var testCard = dto.AddPaymentMethodRequest{
	Type:        models.PaymentMethodCard,
	CardNumber:  "4242424242424242",
	Brand:       "Visa",
	ExpiryMonth: 12,
	ExpiryYear:  2030,
	MakeDefault: true,
}

func seedCardMethod(t *testing.T, db *gorm.DB, svc PaymentService, userID string) string {
	t.Helper()

	req := testCard
	method, err := svc.AddMethod(db, userID, &req)
	require.NoError(t, err)
	return method.ID
}

func seedCustomerReviews(t *testing.T, db *gorm.DB, providerID string, ratings []float64) {
	t.Helper()

	var reviewer models.Customer
	if err := db.First(&reviewer, "user_id = ?", "cust-rev").Error; err != nil {
		seedCustomer(t, db, "cust-rev")
	}

	repo := repositories.NewReviewRepository()
	for i, rating := range ratings {
		review := &models.Review{
			ProviderID:   providerID,
			CustomerID:   "cust-rev",
			CustomerName: "Emily R.",
			Rating:       rating,
			Comment:      fmt.Sprintf("Review %d", i+1),
			ServiceType:  "House Cleaning",
			ReviewerType: models.ReviewerTypeCustomer,
		}
		require.NoError(t, repo.CreateReview(db, review))
	}
}
