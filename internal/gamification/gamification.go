package gamification

import (
	"fmt"
	"time"

	"homepro_backend/internal/models"
)

// Бонусы за отзывы
const (
	SevenReviewsBonusLeads = 2
	TenPerfectBonusLeads   = 5

	sevenReviewsRequired = 7
	tenPerfectRequired   = 10
	perfectWindowDays    = 30
)

// CheckSevenReviewsBonus - награда за 7+ отзывов клиентов со средним
// рейтингом СТРОГО выше 4. Граница исключающая: ровно 4.0 не проходит.
func CheckSevenReviewsBonus(reviews []models.Review, providerID string) bool {
	providerReviews := customerReviews(reviews, providerID)
	if len(providerReviews) < sevenReviewsRequired {
		return false
	}

	var totalRating float64
	for _, r := range providerReviews {
		totalRating += r.Rating
	}
	averageRating := totalRating / float64(len(providerReviews))

	return averageRating > 4
}

// CheckTenPerfectReviewsBonus - награда за 10+ отзывов клиентов с оценкой 5
// за последние 30 дней. Граница окна включающая (now - 30d входит).
func CheckTenPerfectReviewsBonus(reviews []models.Review, providerID string, now time.Time) bool {
	thirtyDaysAgo := now.AddDate(0, 0, -perfectWindowDays)

	var recentCount, perfectCount int
	for _, r := range reviews {
		if r.ProviderID != providerID || r.ReviewerType != models.ReviewerTypeCustomer {
			continue
		}
		if r.CreatedAt.Before(thirtyDaysAgo) {
			continue
		}
		recentCount++
		if r.Rating == 5 {
			perfectCount++
		}
	}

	if recentCount < tenPerfectRequired {
		return false
	}
	return perfectCount >= tenPerfectRequired
}

// CalculateBonusLeads считает сумму новых, еще не выданных бонусных лидов
// (0, 2, 5 или 7). Чистая функция: повторный вызов с теми же входами дает
// тот же результат.
func CalculateBonusLeads(
	reviews []models.Review,
	providerID string,
	existingRewards []models.GamificationReward,
	now time.Time,
) int {
	bonusLeads := 0

	if CheckSevenReviewsBonus(reviews, providerID) && !hasReward(existingRewards, providerID, models.RewardTypeSevenReviews) {
		bonusLeads += SevenReviewsBonusLeads
	}

	if CheckTenPerfectReviewsBonus(reviews, providerID, now) && !hasReward(existingRewards, providerID, models.RewardTypeTenPerfect) {
		bonusLeads += TenPerfectBonusLeads
	}

	return bonusLeads
}

// Progress - прогресс провайдера к одной награде
type Progress struct {
	Current   int  `json:"current"`
	Required  int  `json:"required"`
	Qualified bool `json:"qualified"`
}

// Status - сводка для прогресс-баров дашборда.
// Current не обрезается сверху: 12 отзывов показываются как "12/7".
type Status struct {
	SevenReviewsProgress Progress `json:"seven_reviews_progress"`
	TenPerfectProgress   Progress `json:"ten_perfect_progress"`
	TotalBonusAvailable  int      `json:"total_bonus_available"`
}

// GetStatus собирает прогресс по обеим наградам
func GetStatus(reviews []models.Review, providerID string, now time.Time) Status {
	providerReviews := customerReviews(reviews, providerID)

	var totalRating float64
	for _, r := range providerReviews {
		totalRating += r.Rating
	}
	averageRating := 0.0
	if len(providerReviews) > 0 {
		averageRating = totalRating / float64(len(providerReviews))
	}

	sevenQualified := len(providerReviews) >= sevenReviewsRequired && averageRating > 4

	thirtyDaysAgo := now.AddDate(0, 0, -perfectWindowDays)
	recentPerfect := 0
	for _, r := range providerReviews {
		if r.Rating == 5 && !r.CreatedAt.Before(thirtyDaysAgo) {
			recentPerfect++
		}
	}
	tenQualified := recentPerfect >= tenPerfectRequired

	totalBonus := 0
	if sevenQualified {
		totalBonus += SevenReviewsBonusLeads
	}
	if tenQualified {
		totalBonus += TenPerfectBonusLeads
	}

	return Status{
		SevenReviewsProgress: Progress{
			Current:   len(providerReviews),
			Required:  sevenReviewsRequired,
			Qualified: sevenQualified,
		},
		TenPerfectProgress: Progress{
			Current:   recentPerfect,
			Required:  tenPerfectRequired,
			Qualified: tenQualified,
		},
		TotalBonusAvailable: totalBonus,
	}
}

// RewardBonusLeads - размер награды по ее типу
func RewardBonusLeads(rewardType models.RewardType) int {
	if rewardType == models.RewardTypeSevenReviews {
		return SevenReviewsBonusLeads
	}
	return TenPerfectBonusLeads
}

// FormatBonusLeadsText - текст для отображения количества бонусных лидов
func FormatBonusLeadsText(bonusLeads int) string {
	switch {
	case bonusLeads == 0:
		return "No bonus leads"
	case bonusLeads == 1:
		return "1 bonus lead"
	default:
		return fmt.Sprintf("%d bonus leads", bonusLeads)
	}
}

func customerReviews(reviews []models.Review, providerID string) []models.Review {
	filtered := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ProviderID == providerID && r.ReviewerType == models.ReviewerTypeCustomer {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func hasReward(rewards []models.GamificationReward, providerID string, rewardType models.RewardType) bool {
	for _, r := range rewards {
		if r.ProviderID == providerID && r.RewardType == rewardType {
			return true
		}
	}
	return false
}
