package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRegistration(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Emily Carter",
		Email:    email,
		Password: "password123",
		Phone:    "555-0101",
		Role:     models.UserRoleCustomer,
		ZipCode:  "73301",
		City:     "Austin",
		State:    "TX",
	}
}

func TestRegisterAndLoginCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestContainer().AuthService

	resp, err := svc.Register(db, customerRegistration("emily@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, models.UserRoleCustomer, resp.User.Role)
	assert.NotNil(t, resp.User.Customer)
	assert.Nil(t, resp.User.Provider)

	// Успешный вход
	login, err := svc.Login(db, &dto.LoginRequest{Email: "emily@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	// Неверный пароль и неизвестный email дают одну и ту же ошибку
	_, err = svc.Login(db, &dto.LoginRequest{Email: "emily@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterProviderStartsDeactivated(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestContainer().AuthService

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Name:          "Mike Johnson",
		Email:         "mike@cleanpro.com",
		Password:      "password123",
		Phone:         "555-0102",
		Role:          models.UserRoleProvider,
		City:          "Austin",
		State:         "TX",
		ZipCode:       "73301",
		BusinessName:  "CleanPro Services",
		Services:      []string{"House Cleaning", "Carpet Cleaning"},
		PriceRangeMin: 80,
		PriceRangeMax: 200,
		HasInsurance:  true,
	})
	require.NoError(t, err)

	provider := resp.User.Provider
	require.NotNil(t, provider)
	assert.False(t, provider.ProfileActivated)
	assert.Equal(t, models.BackgroundCheckPending, provider.BackgroundCheckStatus)
	assert.Equal(t, 1, provider.Level)
	assert.ElementsMatch(t, []string{"House Cleaning", "Carpet Cleaning"}, provider.Services)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestContainer().AuthService

	_, err := svc.Register(db, customerRegistration("emily@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(db, customerRegistration("emily@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Откат транзакции: второй пользователь не создан
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestContainer().AuthService

	req := customerRegistration("emily@example.com")
	req.Password = "short"
	_, err := svc.Register(db, req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}
