package repositories

import (
	"testing"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProvidersFiltersAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProviderRepository()

	createProvider(t, db, "p1", "Austin", true, 4.9)
	createProvider(t, db, "p2", "Austin", true, 3.0)
	createProvider(t, db, "p3", "Dallas", true, 5.0)
	createProvider(t, db, "p4", "Austin", false, 4.5) // не активирован

	// Без фильтров: только активированные, отсортированы по рейтингу
	providers, total, err := repo.FindProviders(db, ProviderFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, providers, 3)
	assert.Equal(t, "p3", providers[0].UserID)
	assert.Equal(t, "p1", providers[1].UserID)

	// Фильтр по городу
	providers, total, err = repo.FindProviders(db, ProviderFilter{City: "Austin"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, providers, 2)
	assert.Equal(t, "p1", providers[0].UserID)

	// Пагинация: total считается до limit/offset
	providers, total, err = repo.FindProviders(db, ProviderFilter{City: "Austin", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, providers, 1)
	assert.Equal(t, "p2", providers[0].UserID)

	// Минимальный рейтинг
	minRating := 4.0
	providers, total, err = repo.FindProviders(db, ProviderFilter{City: "Austin", MinRating: &minRating})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, providers, 1)
	assert.Equal(t, "p1", providers[0].UserID)
}

func TestFindProvidersByService(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProviderRepository()

	createProvider(t, db, "p1", "Austin", true, 4.9)
	createProvider(t, db, "p2", "Austin", true, 3.0)
	require.NoError(t, repo.ReplaceServices(db, "p1", []string{"Plumbing", "Electrical Work"}))
	require.NoError(t, repo.ReplaceServices(db, "p2", []string{"House Cleaning"}))

	providers, total, err := repo.FindProviders(db, ProviderFilter{ServiceName: "Plumbing"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, providers, 1)
	assert.Equal(t, "p1", providers[0].UserID)
}

func TestConsumeLeadBonusFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProviderRepository()

	createProvider(t, db, "p1", "Austin", true, 4.0)
	require.NoError(t, repo.AddBonusLeads(db, "p1", 1))
	require.NoError(t, repo.AddAvailableLeads(db, "p1", 1))

	// Первым расходуется бонусный лид
	require.NoError(t, repo.ConsumeLead(db, "p1"))
	provider, err := repo.FindByUserID(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, provider.BonusLeads)
	assert.Equal(t, 1, provider.AvailableLeads)

	// Затем купленный
	require.NoError(t, repo.ConsumeLead(db, "p1"))
	provider, err = repo.FindByUserID(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, provider.AvailableLeads)

	// Баланс пуст
	assert.ErrorIs(t, repo.ConsumeLead(db, "p1"), ErrNoLeadsLeft)
}

func TestPortfolioImagePositions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProviderRepository()

	createProvider(t, db, "p1", "Austin", true, 4.0)

	first, err := repo.AddPortfolioImage(db, "p1", "/files/one.jpg")
	require.NoError(t, err)
	second, err := repo.AddPortfolioImage(db, "p1", "/files/two.jpg")
	require.NoError(t, err)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)

	removed, err := repo.RemovePortfolioImage(db, "p1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "/files/one.jpg", removed.ImageURL)

	// Чужое или несуществующее изображение
	_, err = repo.RemovePortfolioImage(db, "p1", 999)
	assert.ErrorIs(t, err, ErrProviderNotFound)

	provider, err := repo.FindByUserID(db, "p1")
	require.NoError(t, err)
	require.Len(t, provider.PortfolioImages, 1)
	assert.Equal(t, "/files/two.jpg", provider.PortfolioImages[0].ImageURL)
}

func TestUpdateRatingStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProviderRepository()

	createProvider(t, db, "p1", "Austin", true, 0)
	require.NoError(t, repo.UpdateRatingStats(db, "p1", 4.5, 7, 2))

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "p1").Error)
	assert.Equal(t, 4.5, provider.Rating)
	assert.Equal(t, 7, provider.ReviewCount)
	assert.Equal(t, 2, provider.Level)
}
