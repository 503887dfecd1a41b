package services

import (
	"testing"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimSevenReviewsBonusOnce(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-g", true)
	seedCustomerReviews(t, db, "prov-g", []float64{5, 5, 5, 5, 5, 5, 4})

	status, err := container.GamificationService.GetStatus(db, "prov-g")
	require.NoError(t, err)
	assert.True(t, status.SevenReviews.Qualified)
	assert.Equal(t, 2, status.ClaimableLeads)

	resp, err := container.GamificationService.ClaimBonuses(db, "prov-g")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.AwardedLeads)
	assert.Equal(t, []string{string(models.RewardTypeSevenReviews)}, resp.Rewards)
	assert.Equal(t, 2, resp.BonusLeads)

	// Награда одноразовая
	resp, err = container.GamificationService.ClaimBonuses(db, "prov-g")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.AwardedLeads)
	assert.Empty(t, resp.Rewards)
	assert.Equal(t, 2, resp.BonusLeads)

	status, err = container.GamificationService.GetStatus(db, "prov-g")
	require.NoError(t, err)
	assert.Equal(t, 0, status.ClaimableLeads)
}

func TestClaimBothBonuses(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-g", true)
	// 10 свежих отзывов на 5 звезд проходят оба порога
	seedCustomerReviews(t, db, "prov-g", []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5})

	resp, err := container.GamificationService.ClaimBonuses(db, "prov-g")
	require.NoError(t, err)
	assert.Equal(t, 7, resp.AwardedLeads)
	assert.Len(t, resp.Rewards, 2)
	assert.Equal(t, 7, resp.BonusLeads)
}

func TestClaimNothingBelowThreshold(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-g", true)
	seedCustomerReviews(t, db, "prov-g", []float64{5, 5, 5})

	resp, err := container.GamificationService.ClaimBonuses(db, "prov-g")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.AwardedLeads)
	assert.Equal(t, 0, resp.BonusLeads)
}
