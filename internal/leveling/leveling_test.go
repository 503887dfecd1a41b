package leveling

import (
	"testing"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetProviderLevel(t *testing.T) {
	assert.Equal(t, 1, GetProviderLevel(0))
	assert.Equal(t, 1, GetProviderLevel(3.9))
	assert.Equal(t, 2, GetProviderLevel(4.0))
	assert.Equal(t, 2, GetProviderLevel(5.0))
}

func TestGetLevelBadge(t *testing.T) {
	assert.Equal(t, "#CD7F32", GetLevelBadgeColor(Level1))
	assert.Equal(t, "#FFD700", GetLevelBadgeColor(Level2))
	// Неизвестный уровень падает на бронзу
	assert.Equal(t, "#CD7F32", GetLevelBadgeColor(9))

	assert.Equal(t, "Level 2", GetLevelBadgeText(Level2))
}

func TestCanGetVerified(t *testing.T) {
	assert.False(t, CanGetVerified(&models.Provider{HasInsurance: false}))
	assert.True(t, CanGetVerified(&models.Provider{HasInsurance: true}))
}
