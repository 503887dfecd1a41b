package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerReviewRequest(providerID, customerID string, rating float64) *dto.SubmitReviewRequest {
	return &dto.SubmitReviewRequest{
		ProviderID:   providerID,
		CustomerID:   customerID,
		Rating:       rating,
		Comment:      "Test review",
		ServiceType:  "House Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	}
}

func disputeRequest() *dto.DisputeReviewRequest {
	return &dto.DisputeReviewRequest{
		Description: "This review describes a job we never performed for this customer.",
	}
}

func TestSubmitReviewRecalculatesRatingAndLevel(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-r", true)
	seedCustomer(t, db, "cust-r")

	resp, err := container.ReviewService.SubmitReview(db, customerReviewRequest("prov-r", "cust-r", 5))
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.Rating)

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-r").Error)
	assert.Equal(t, 5.0, provider.Rating)
	assert.Equal(t, 1, provider.ReviewCount)
	assert.Equal(t, 2, provider.Level) // рейтинг >= 4 дает уровень 2

	// Низкая оценка опускает средний рейтинг и уровень
	_, err = container.ReviewService.SubmitReview(db, customerReviewRequest("prov-r", "cust-r", 1))
	require.NoError(t, err)

	require.NoError(t, db.First(&provider, "user_id = ?", "prov-r").Error)
	assert.Equal(t, 3.0, provider.Rating)
	assert.Equal(t, 2, provider.ReviewCount)
	assert.Equal(t, 1, provider.Level)
}

func TestDisputeApprovalRemovesReviewFromRating(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-r", true)
	seedCustomer(t, db, "cust-r")

	_, err := container.ReviewService.SubmitReview(db, customerReviewRequest("prov-r", "cust-r", 5))
	require.NoError(t, err)
	bad, err := container.ReviewService.SubmitReview(db, customerReviewRequest("prov-r", "cust-r", 1))
	require.NoError(t, err)

	dispute, err := container.ReviewService.DisputeReview(db, "prov-r", bad.ID, disputeRequest())
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusPending, dispute.Status)

	// Повторное оспаривание того же отзыва запрещено
	_, err = container.ReviewService.DisputeReview(db, "prov-r", bad.ID, disputeRequest())
	assert.ErrorIs(t, err, apperrors.ErrReviewAlreadyDisputed)

	require.NoError(t, container.ReviewService.ResolveDispute(db, dispute.ID, true))

	// Отзыв удален, рейтинг пересчитан без него
	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("id = ?", bad.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-r").Error)
	assert.Equal(t, 5.0, provider.Rating)
	assert.Equal(t, 1, provider.ReviewCount)
	assert.Equal(t, 2, provider.Level)
}

func TestDisputeRejectionKeepsReview(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-r", true)
	seedCustomer(t, db, "cust-r")

	bad, err := container.ReviewService.SubmitReview(db, customerReviewRequest("prov-r", "cust-r", 2))
	require.NoError(t, err)

	dispute, err := container.ReviewService.DisputeReview(db, "prov-r", bad.ID, disputeRequest())
	require.NoError(t, err)
	require.NoError(t, container.ReviewService.ResolveDispute(db, dispute.ID, false))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("id = ?", bad.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var saved models.Review
	require.NoError(t, db.First(&saved, "id = ?", bad.ID).Error)
	assert.True(t, saved.Disputed)
}
