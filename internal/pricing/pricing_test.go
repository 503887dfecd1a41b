package pricing

import (
	"testing"

	"homepro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Len(t, LeadPackages, 3)

	single, ok := FindPackage("single_lead")
	require.True(t, ok)
	assert.Equal(t, 1, single.LeadsCount)
	assert.Equal(t, 15.0, single.Price)
	assert.Equal(t, 0.0, single.SavingsPercentage)

	weekly, ok := FindPackage("weekly_pack")
	require.True(t, ok)
	assert.Equal(t, 6, weekly.LeadsCount)
	assert.Equal(t, 75.0, weekly.Price)
	assert.Equal(t, 17.0, weekly.SavingsPercentage)

	monthly, ok := FindPackage("monthly_pack")
	require.True(t, ok)
	assert.Equal(t, 20, monthly.LeadsCount)
	assert.Equal(t, 240.0, monthly.Price)
	assert.Equal(t, 20.0, monthly.SavingsPercentage)

	_, ok = FindPackage("yearly_pack")
	assert.False(t, ok)
}

func TestPricePerLead(t *testing.T) {
	for _, pkg := range LeadPackages {
		assert.Equal(t, pkg.Price/float64(pkg.LeadsCount), PricePerLead(pkg))
	}

	monthly, _ := FindPackage("monthly_pack")
	assert.Equal(t, 12.0, PricePerLead(monthly))
}

func TestSavings(t *testing.T) {
	single, _ := FindPackage("single_lead")
	weekly, _ := FindPackage("weekly_pack")
	monthly, _ := FindPackage("monthly_pack")

	assert.Equal(t, 0.0, Savings(single))
	assert.Equal(t, 15.0, Savings(weekly))  // 6*15 - 75
	assert.Equal(t, 60.0, Savings(monthly)) // 20*15 - 240
}

func TestPlanPrice(t *testing.T) {
	assert.Equal(t, 0.0, PlanPrice(models.SubscriptionPlanNone))
	assert.Equal(t, 29.99, PlanPrice(models.SubscriptionPlanBronze))
	assert.Equal(t, 59.99, PlanPrice(models.SubscriptionPlanSilver))
	assert.Equal(t, 99.99, PlanPrice(models.SubscriptionPlanGold))
	assert.Equal(t, 0.0, PlanPrice(models.SubscriptionPlan("platinum")))
}

func TestHasPlanFeature(t *testing.T) {
	// none и неизвестный тариф не имеют фич вообще
	assert.False(t, HasPlanFeature(models.SubscriptionPlanNone, FeatureAnalyticsAccess))
	assert.False(t, HasPlanFeature(models.SubscriptionPlan("platinum"), FeatureHighlighted))

	assert.False(t, HasPlanFeature(models.SubscriptionPlanBronze, FeaturePrioritySearch))
	assert.False(t, HasPlanFeature(models.SubscriptionPlanBronze, FeatureAnalyticsAccess))
	assert.True(t, HasPlanFeature(models.SubscriptionPlanBronze, FeatureHighlighted))

	assert.True(t, HasPlanFeature(models.SubscriptionPlanSilver, FeaturePrioritySearch))
	assert.True(t, HasPlanFeature(models.SubscriptionPlanSilver, FeatureAnalyticsAccess))

	assert.True(t, HasPlanFeature(models.SubscriptionPlanGold, FeatureFeatured))
	assert.True(t, HasPlanFeature(models.SubscriptionPlanGold, FeatureCustomerSupport))
}

func TestPaymentGatewayFee(t *testing.T) {
	assert.InDelta(t, 0.30, PaymentGatewayFee(0), 1e-9)
	assert.InDelta(t, 100*0.029+0.30, PaymentGatewayFee(100), 1e-9)
	assert.InDelta(t, 100+100*0.029+0.30, TotalWithFee(100), 1e-9)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$15.00", FormatCurrency(15))
	assert.Equal(t, "$3.20", FormatCurrency(3.2))
	assert.Equal(t, "$0.30", FormatCurrency(0.3))
}

func TestVerificationFee(t *testing.T) {
	assert.Equal(t, 25.0, VerificationFee)
}
