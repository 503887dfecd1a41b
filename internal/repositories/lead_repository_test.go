package repositories

import (
	"testing"
	"time"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPurchasedGuardsDoublePurchase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLeadRepository()

	createCustomer(t, db, "c1", "Austin")
	createProvider(t, db, "p1", "Austin", true, 4.0)
	createProvider(t, db, "p2", "Austin", true, 4.0)
	lead := createLead(t, db, "c1", "Austin")

	require.NoError(t, repo.MarkPurchased(db, lead.ID, "p1"))

	found, err := repo.FindLeadByID(db, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusPurchased, found.Status)
	require.NotNil(t, found.PurchasedBy)
	assert.Equal(t, "p1", *found.PurchasedBy)

	// Второй покупатель получает отказ, лид остается за первым
	assert.ErrorIs(t, repo.MarkPurchased(db, lead.ID, "p2"), ErrLeadNotAvailable)

	assert.ErrorIs(t, repo.MarkPurchased(db, "missing-lead", "p2"), ErrLeadNotFound)
}

func TestFindAvailableLeadsByGeography(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLeadRepository()

	createCustomer(t, db, "c1", "Austin")
	createCustomer(t, db, "c2", "Dallas")
	createLead(t, db, "c1", "Austin")
	createLead(t, db, "c2", "Dallas")

	austin, err := repo.FindAvailableLeads(db, "Austin", "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, austin, 1)

	all, err := repo.FindAvailableLeads(db, "", "TX", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExpireLeadsOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLeadRepository()

	createCustomer(t, db, "c1", "Austin")
	stale := createLead(t, db, "c1", "Austin")
	fresh := createLead(t, db, "c1", "Austin")

	// Состарим один лид
	old := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Lead{}).Where("id = ?", stale.ID).
		Update("created_at", old).Error)

	expired, err := repo.ExpireLeadsOlderThan(db, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, expired)

	found, err := repo.FindLeadByID(db, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusExpired, found.Status)

	found, err = repo.FindLeadByID(db, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusAvailable, found.Status)
}
