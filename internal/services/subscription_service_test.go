package services

import (
	"testing"
	"time"

	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndCancel(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-s", true)
	seedCardMethod(t, db, container.PaymentService, "prov-s")

	resp, err := container.SubscriptionService.Subscribe(db, "prov-s", &dto.SubscribeRequest{Plan: models.SubscriptionPlanGold})
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionPlanGold, resp.Plan)
	assert.Equal(t, pricing.PlanPrice(models.SubscriptionPlanGold), resp.Price)
	assert.Equal(t, pricing.TotalWithFee(resp.Price), resp.TotalCharged)
	require.NotNil(t, resp.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), *resp.ExpiresAt, time.Minute)
	assert.NotEmpty(t, resp.Features)

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-s").Error)
	assert.Equal(t, models.SubscriptionPlanGold, provider.SubscriptionPlan)
	require.NotNil(t, provider.SubscriptionExpiresAt)

	require.NoError(t, container.SubscriptionService.Cancel(db, "prov-s"))
	var cancelled models.Provider
	require.NoError(t, db.First(&cancelled, "user_id = ?", "prov-s").Error)
	assert.Equal(t, models.SubscriptionPlanNone, cancelled.SubscriptionPlan)
	assert.Nil(t, cancelled.SubscriptionExpiresAt)

	// Отменять больше нечего
	assert.ErrorIs(t, container.SubscriptionService.Cancel(db, "prov-s"), apperrors.ErrSubscriptionCancelled)
}

func TestSubscribeRequiresActivation(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-s", false)

	_, err := container.SubscriptionService.Subscribe(db, "prov-s", &dto.SubscribeRequest{Plan: models.SubscriptionPlanBronze})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotActivated)
}
