package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consentRequest() *dto.ConsentRequest {
	return &dto.ConsentRequest{
		FullLegalName:        "Carlos Alberto Ramirez",
		DateOfBirth:          "1988-03-14",
		SocialSecurityNumber: "123456789",
		AgreedToTerms:        true,
	}
}

func TestBackgroundCheckActivatesProfile(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-b", false)

	// До согласия статуса нет
	_, err := container.BackgroundCheckService.GetStatus(db, "prov-b")
	assert.ErrorIs(t, err, apperrors.ErrConsentRequired)

	resp, err := container.BackgroundCheckService.SubmitConsent(db, "prov-b", "203.0.113.10", consentRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BackgroundCheckInProgress, resp.Status)

	var provider models.Provider
	require.NoError(t, db.First(&provider, "user_id = ?", "prov-b").Error)
	assert.Equal(t, models.BackgroundCheckInProgress, provider.BackgroundCheckStatus)
	assert.False(t, provider.ProfileActivated)

	// Завершение проверки активирует профиль
	resp, err = container.BackgroundCheckService.CompleteCheck(db, "prov-b")
	require.NoError(t, err)
	assert.Equal(t, models.BackgroundCheckClear, resp.Status)
	require.NotNil(t, resp.CompletedAt)

	require.NoError(t, db.First(&provider, "user_id = ?", "prov-b").Error)
	assert.True(t, provider.ProfileActivated)
	assert.Equal(t, models.BackgroundCheckClear, provider.BackgroundCheckStatus)
	assert.NotNil(t, provider.BackgroundCheckDate)

	// Повторное завершение невозможно
	_, err = container.BackgroundCheckService.CompleteCheck(db, "prov-b")
	assert.Error(t, err)
}

func TestSubmitConsentRejectedWhenActivated(t *testing.T) {
	db := setupTestDB(t)
	container := newTestContainer()

	seedProvider(t, db, "prov-b", true)

	_, err := container.BackgroundCheckService.SubmitConsent(db, "prov-b", "203.0.113.10", consentRequest())
	assert.Error(t, err)
}
