package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedWeeklyPackage(t *testing.T, db *gorm.DB) *models.LeadPackageRow {
	t.Helper()

	row := &models.LeadPackageRow{
		ID:                "weekly",
		Name:              "Weekly Pack",
		LeadsCount:        6,
		Price:             75,
		Duration:          models.PackageDurationWeekly,
		SavingsPercentage: 17,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func seedAvailableLead(t *testing.T, db *gorm.DB, customerID string) *models.Lead {
	t.Helper()

	service := &models.Service{ID: "svc-lead", Name: "Plumbing", Category: "Home Repair", Icon: "water"}
	require.NoError(t, db.FirstOrCreate(service, models.Service{ID: service.ID}).Error)

	request := &models.ServiceRequest{
		CustomerID:  customerID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Description: "Fix the kitchen sink",
		ZipCode:     "73301",
		City:        "Austin",
		State:       "TX",
		Status:      models.RequestStatusOpen,
	}
	require.NoError(t, db.Create(request).Error)

	lead := &models.Lead{
		ServiceRequestID: request.ID,
		CustomerID:       customerID,
		Price:            pricing.LeadPriceSingle,
		Status:           models.LeadStatusAvailable,
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

func TestPurchasePackageChargesWithGatewayFee(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-l", true)
	seedCardMethod(t, db, container.PaymentService, "prov-l")
	pkg := seedWeeklyPackage(t, db)

	resp, err := container.LeadService.PurchasePackage(db, "prov-l", &dto.PurchasePackageRequest{PackageID: pkg.ID})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.LeadsCount)
	assert.Equal(t, 75.0, resp.TotalPrice)
	assert.Equal(t, pricing.PaymentGatewayFee(75), resp.GatewayFee)
	assert.Equal(t, pricing.TotalWithFee(75), resp.TotalCharged)
	assert.Equal(t, 6, resp.AvailableLeads)
	require.NotNil(t, resp.ExpiresAt)

	// Баланс зачислен, транзакция записана
	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-l").Error)
	assert.Equal(t, 6, provider.AvailableLeads)

	var txn models.PaymentTransaction
	require.NoError(t, db.First(&txn, "user_id = ?", "prov-l").Error)
	assert.Equal(t, models.PaymentTypeLeadPurchase, txn.Type)
	assert.Equal(t, pricing.TotalWithFee(75), txn.Amount)
	assert.Equal(t, models.PaymentStatusCompleted, txn.Status)
}

func TestPurchasePackageRequiresActivation(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-l", false)
	pkg := seedWeeklyPackage(t, db)

	_, err := container.LeadService.PurchasePackage(db, "prov-l", &dto.PurchasePackageRequest{PackageID: pkg.ID})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotActivated)
}

func TestPurchasePackageRequiresPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-l", true)
	pkg := seedWeeklyPackage(t, db)

	_, err := container.LeadService.PurchasePackage(db, "prov-l", &dto.PurchasePackageRequest{PackageID: pkg.ID})
	assert.ErrorIs(t, err, apperrors.ErrNoPaymentMethod)

	// Сбой платежа откатывает зачисление лидов
	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-l").Error)
	assert.Equal(t, 0, provider.AvailableLeads)
}

func TestPurchaseLeadConsumesBalance(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-l", true)
	seedCustomer(t, db, "cust-l")
	lead := seedAvailableLead(t, db, "cust-l")
	second := seedAvailableLead(t, db, "cust-l")

	require.NoError(t, db.Model(&models.Provider{}).Where("user_id = ?", "prov-l").
		Update("available_leads", 1).Error)

	resp, err := container.LeadService.PurchaseLead(db, "prov-l", lead.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.LeadStatusPurchased), string(resp.Status))

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-l").Error)
	assert.Equal(t, 0, provider.AvailableLeads)

	// Пустой баланс
	_, err = container.LeadService.PurchaseLead(db, "prov-l", second.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoAvailableLeads)
}

func TestPurchaseLeadAlreadyTaken(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-a", true)
	seedProvider(t, db, "prov-b", true)
	seedCustomer(t, db, "cust-l")
	lead := seedAvailableLead(t, db, "cust-l")

	require.NoError(t, db.Model(&models.Provider{}).Where("user_id IN ?", []string{"prov-a", "prov-b"}).
		Update("available_leads", 1).Error)

	_, err := container.LeadService.PurchaseLead(db, "prov-a", lead.ID)
	require.NoError(t, err)

	// Второй провайдер получает отказ, его баланс не списывается
	_, err = container.LeadService.PurchaseLead(db, "prov-b", lead.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeadNotAvailable)

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-b").Error)
	assert.Equal(t, 1, provider.AvailableLeads)
}

func TestGetPackagesComputesPerLeadPrice(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedWeeklyPackage(t, db)

	packages, err := container.LeadService.GetPackages(db)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, 12.5, packages[0].PricePerLead)
}
