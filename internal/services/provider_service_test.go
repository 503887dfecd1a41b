package services

import (
	"testing"

	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvidersPagination(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	for _, id := range []string{"prov-1", "prov-2", "prov-3"} {
		seedProvider(t, db, id, true)
	}
	seedProvider(t, db, "prov-hidden", false)

	resp, err := container.ProviderService.GetProviders(db, &dto.ProviderListRequest{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Total)
	assert.Len(t, resp.Providers, 2)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 0, resp.Offset)

	resp, err = container.ProviderService.GetProviders(db, &dto.ProviderListRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Total)
	assert.Len(t, resp.Providers, 1)
}

func TestGetProviderRejectsCustomer(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedCustomer(t, db, "cust-p")

	_, err := container.ProviderService.GetProvider(db, "cust-p")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestUpdateProviderReplacesServices(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-p", true)

	services := []string{"Painting", "Roofing"}
	bio := "Family business since 2010"
	resp, err := container.ProviderService.UpdateProvider(db, "prov-p", &dto.UpdateProviderRequest{
		Services: &services,
		Bio:      &bio,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Provider)
	assert.ElementsMatch(t, services, resp.Provider.Services)
	assert.Equal(t, bio, resp.Provider.Bio)

	// Повторное обновление без services их не трогает
	experience := "15 years"
	resp, err = container.ProviderService.UpdateProvider(db, "prov-p", &dto.UpdateProviderRequest{
		Experience: &experience,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, services, resp.Provider.Services)
	assert.Equal(t, "15 years", resp.Provider.Experience)
}
