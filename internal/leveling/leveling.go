package leveling

import (
	"fmt"

	"homepro_backend/internal/models"
)

// Уровни провайдера по звездному рейтингу:
// - Level 1: 1-3 звезды
// - Level 2: 4-5 звезд
const (
	Level1 = 1
	Level2 = 2
)

// GetProviderLevel возвращает уровень провайдера по рейтингу
func GetProviderLevel(rating float64) int {
	if rating >= 4 {
		return Level2
	}
	return Level1
}

// GetLevelBadgeColor - цвет значка уровня
func GetLevelBadgeColor(level int) string {
	colors := map[int]string{
		Level1: "#CD7F32", // bronze
		Level2: "#FFD700", // gold
	}
	if color, ok := colors[level]; ok {
		return color
	}
	return colors[Level1]
}

// GetLevelBadgeText - текст значка уровня
func GetLevelBadgeText(level int) string {
	return fmt.Sprintf("Level %d", level)
}

// CanGetVerified - провайдер может получить значок верификации,
// если у него есть страховка (и он платит ежемесячный взнос)
func CanGetVerified(provider *models.Provider) bool {
	return provider.HasInsurance
}

// GetVerificationRequirements - список требований для верификации
func GetVerificationRequirements() []string {
	return []string{
		"Upload valid liability insurance documentation",
		"Pay monthly verification fee of $25 USD",
		"Maintain active insurance coverage",
	}
}
