package gamification

import (
	"testing"
	"time"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

const providerID = "provider-1"

func makeReview(rating float64, createdAt time.Time) models.Review {
	r := models.Review{
		ProviderID:   providerID,
		CustomerID:   "customer-1",
		Rating:       rating,
		ReviewerType: models.ReviewerTypeCustomer,
	}
	r.CreatedAt = createdAt
	return r
}

func makeReviews(count int, rating float64, createdAt time.Time) []models.Review {
	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		reviews = append(reviews, makeReview(rating, createdAt))
	}
	return reviews
}

func TestSevenReviewsBonus(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, -6, 0) // давние отзывы, вне 30-дневного окна

	// 7 отзывов по 5 звезд -> только бонус за 7 отзывов
	reviews := makeReviews(7, 5, old)
	assert.True(t, CheckSevenReviewsBonus(reviews, providerID))
	assert.False(t, CheckTenPerfectReviewsBonus(reviews, providerID, now))
	assert.Equal(t, 2, CalculateBonusLeads(reviews, providerID, nil, now))

	// 6 отзывов недостаточно
	assert.False(t, CheckSevenReviewsBonus(makeReviews(6, 5, old), providerID))

	// Средний ровно 4.0 не проходит: граница строгая
	exactlyFour := makeReviews(7, 4, old)
	assert.False(t, CheckSevenReviewsBonus(exactlyFour, providerID))
	assert.Equal(t, 0, CalculateBonusLeads(exactlyFour, providerID, nil, now))

	// Чуть выше 4 проходит
	aboveFour := append(makeReviews(6, 4, old), makeReview(5, old))
	assert.True(t, CheckSevenReviewsBonus(aboveFour, providerID))
}

func TestSevenReviewsIgnoresProviderSubmitted(t *testing.T) {
	now := time.Now()
	reviews := makeReviews(6, 5, now.AddDate(0, -2, 0))

	fromProvider := makeReview(5, now.AddDate(0, -2, 0))
	fromProvider.ReviewerType = models.ReviewerTypeProvider
	reviews = append(reviews, fromProvider)

	// 7-й отзыв оставлен провайдером и не считается
	assert.False(t, CheckSevenReviewsBonus(reviews, providerID))
}

func TestTenPerfectReviewsBonus(t *testing.T) {
	now := time.Now()
	recent := now.AddDate(0, 0, -5)

	// 10 идеальных отзывов за 30 дней -> оба бонуса (7+ отзывов со средним 5.0)
	reviews := makeReviews(10, 5, recent)
	assert.True(t, CheckTenPerfectReviewsBonus(reviews, providerID, now))
	assert.Equal(t, 7, CalculateBonusLeads(reviews, providerID, nil, now))

	// 9 недостаточно
	assert.False(t, CheckTenPerfectReviewsBonus(makeReviews(9, 5, recent), providerID, now))

	// 10 недавних, но один не идеальный -> не проходит
	mixed := append(makeReviews(9, 5, recent), makeReview(4, recent))
	assert.False(t, CheckTenPerfectReviewsBonus(mixed, providerID, now))

	// Отзывы старше 30 дней не попадают в окно
	stale := makeReviews(10, 5, now.AddDate(0, 0, -31))
	assert.False(t, CheckTenPerfectReviewsBonus(stale, providerID, now))

	// Граница окна включающая: ровно now-30d входит
	boundary := makeReviews(10, 5, now.AddDate(0, 0, -30))
	assert.True(t, CheckTenPerfectReviewsBonus(boundary, providerID, now))
}

func TestCalculateBonusLeadsSkipsClaimedRewards(t *testing.T) {
	now := time.Now()
	reviews := makeReviews(10, 5, now.AddDate(0, 0, -3))

	sevenClaimed := []models.GamificationReward{
		{ProviderID: providerID, RewardType: models.RewardTypeSevenReviews, BonusLeads: 2},
	}
	assert.Equal(t, 5, CalculateBonusLeads(reviews, providerID, sevenClaimed, now))

	bothClaimed := append(sevenClaimed, models.GamificationReward{
		ProviderID: providerID, RewardType: models.RewardTypeTenPerfect, BonusLeads: 5,
	})
	assert.Equal(t, 0, CalculateBonusLeads(reviews, providerID, bothClaimed, now))

	// Награды другого провайдера не мешают
	otherProvider := []models.GamificationReward{
		{ProviderID: "provider-2", RewardType: models.RewardTypeSevenReviews, BonusLeads: 2},
	}
	assert.Equal(t, 7, CalculateBonusLeads(reviews, providerID, otherProvider, now))
}

func TestCalculateBonusLeadsIdempotent(t *testing.T) {
	now := time.Now()
	reviews := makeReviews(10, 5, now.AddDate(0, 0, -3))

	first := CalculateBonusLeads(reviews, providerID, nil, now)
	second := CalculateBonusLeads(reviews, providerID, nil, now)
	assert.Equal(t, first, second, "чистая функция: результат не должен меняться между вызовами")
}

func TestGetStatus(t *testing.T) {
	now := time.Now()

	// Нет отзывов - нули, ничего не квалифицировано
	empty := GetStatus(nil, providerID, now)
	assert.Equal(t, 0, empty.SevenReviewsProgress.Current)
	assert.False(t, empty.SevenReviewsProgress.Qualified)
	assert.Equal(t, 0, empty.TotalBonusAvailable)

	// 12 отзывов показываются как 12/7, без обрезания
	reviews := makeReviews(12, 5, now.AddDate(0, 0, -2))
	status := GetStatus(reviews, providerID, now)
	assert.Equal(t, 12, status.SevenReviewsProgress.Current)
	assert.Equal(t, 7, status.SevenReviewsProgress.Required)
	assert.True(t, status.SevenReviewsProgress.Qualified)
	assert.Equal(t, 12, status.TenPerfectProgress.Current)
	assert.True(t, status.TenPerfectProgress.Qualified)
	assert.Equal(t, 7, status.TotalBonusAvailable)
}

func TestFormatBonusLeadsText(t *testing.T) {
	assert.Equal(t, "No bonus leads", FormatBonusLeadsText(0))
	assert.Equal(t, "1 bonus lead", FormatBonusLeadsText(1))
	assert.Equal(t, "7 bonus leads", FormatBonusLeadsText(7))
}
