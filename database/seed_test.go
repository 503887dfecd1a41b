package database

import (
	"testing"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}

func TestSeedDatabase(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedDatabase(db, "password123"))

	var users, services, reviews, packages, leads int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	require.NoError(t, db.Model(&models.LeadPackageRow{}).Count(&packages).Error)
	require.NoError(t, db.Model(&models.Lead{}).Count(&leads).Error)

	assert.EqualValues(t, 5, users)
	assert.EqualValues(t, 14, services)
	assert.EqualValues(t, 9, reviews)
	assert.EqualValues(t, 3, packages)
	assert.EqualValues(t, 3, leads)

	// Флагманский провайдер: активирован, уровень 2, с услугами и портфолио
	var provider models.Provider
	require.NoError(t, db.Preload("Services").Preload("PortfolioImages").
		First(&provider, "user_id = ?", "prov1").Error)
	assert.True(t, provider.ProfileActivated)
	assert.Equal(t, 2, provider.Level)
	assert.Equal(t, models.BackgroundCheckClear, provider.BackgroundCheckStatus)
	assert.NotEmpty(t, provider.Services)
	assert.NotEmpty(t, provider.PortfolioImages)

	// Провайдер без завершенной проверки не активирован
	var pending models.Provider
	require.NoError(t, db.First(&pending, "user_id = ?", "prov3").Error)
	assert.False(t, pending.ProfileActivated)
}

func TestSeedDatabaseIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedDatabase(db, "password123"))

	var before int64
	require.NoError(t, db.Model(&models.User{}).Count(&before).Error)

	// Повторная заливка не должна ничего добавить
	require.NoError(t, SeedDatabase(db, "password123"))

	var after int64
	require.NoError(t, db.Model(&models.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestSeedSkippedWhenUsersExist(t *testing.T) {
	db := setupTestDB(t)

	existing := models.User{
		Name:         "Existing",
		Email:        "existing@example.com",
		PasswordHash: "hash",
		Phone:        "555-0000",
		Role:         models.UserRoleCustomer,
		ZipCode:      "73301",
		City:         "Austin",
		State:        "TX",
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, SeedDatabase(db, "password123"))

	// Guard сработал: каталог услуг не заливался
	var services int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.EqualValues(t, 0, services)
}
