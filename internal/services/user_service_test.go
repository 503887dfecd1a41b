package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserPartialFields(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedCustomer(t, db, "cust-u")

	name := "Emily Carter-Smith"
	city := "Houston"
	resp, err := container.UserService.UpdateUser(db, "cust-u", &dto.UpdateUserRequest{
		Name: &name,
		City: &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "Emily Carter-Smith", resp.Name)
	assert.Equal(t, "Houston", resp.City)

	// Нетронутые поля сохраняются
	assert.Equal(t, "cust-u@example.com", resp.Email)
	assert.Equal(t, "TX", resp.State)
}

func TestDeleteUserCascadesProfile(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-u", true)
	require.NoError(t, container.UserService.DeleteUser(db, "prov-u"))

	var users, providers int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "prov-u").Count(&users).Error)
	require.NoError(t, db.Model(&models.Provider{}).Where("user_id = ?", "prov-u").Count(&providers).Error)
	assert.EqualValues(t, 0, users)
	assert.EqualValues(t, 0, providers)
}

func TestGetAccountUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	_, err := container.UserService.GetAccount(db, "missing")
	assert.Error(t, err)
}
