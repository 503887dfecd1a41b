package pricing

import (
	"fmt"

	"homepro_backend/internal/models"
)

// Lead pricing configuration (USD)
const (
	LeadPriceSingle  = 15.0 // $15 per lead
	LeadPriceWeekly  = 75.0 // $75 for 6 leads
	LeadPriceMonthly = 240.0 // $240 for 20 leads

	// VerificationFee - ежемесячная плата за значок верификации
	VerificationFee = 25.0
)

// LeadPackage - элемент каталога пакетов лидов.
// Каталог фиксированный, цены не вычисляются по формуле.
type LeadPackage struct {
	ID                string
	Name              string
	LeadsCount        int
	Price             float64
	Duration          models.PackageDuration
	SavingsPercentage float64
}

// LeadPackages - трехуровневый каталог пакетов
var LeadPackages = []LeadPackage{
	{
		ID:         "single_lead",
		Name:       "Single Lead",
		LeadsCount: 1,
		Price:      LeadPriceSingle,
		Duration:   models.PackageDurationSingle,
	},
	{
		ID:                "weekly_pack",
		Name:              "Weekly Package",
		LeadsCount:        6,
		Price:             LeadPriceWeekly,
		Duration:          models.PackageDurationWeekly,
		SavingsPercentage: 17, // ($90 - $75) / $90 * 100
	},
	{
		ID:                "monthly_pack",
		Name:              "Monthly Package",
		LeadsCount:        20,
		Price:             LeadPriceMonthly,
		Duration:          models.PackageDurationMonthly,
		SavingsPercentage: 20, // ($300 - $240) / $300 * 100
	},
}

// FindPackage возвращает пакет каталога по ID
func FindPackage(id string) (LeadPackage, bool) {
	for _, pkg := range LeadPackages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return LeadPackage{}, false
}

// PricePerLead - цена одного лида внутри пакета
func PricePerLead(pkg LeadPackage) float64 {
	return pkg.Price / float64(pkg.LeadsCount)
}

// Savings - экономия относительно покупки лидов поштучно.
// Для одиночного пакета всегда 0.
func Savings(pkg LeadPackage) float64 {
	regularPrice := float64(pkg.LeadsCount) * LeadPriceSingle
	return regularPrice - pkg.Price
}

// SubscriptionFeatures - фиксированный набор фич тарифа
type SubscriptionFeatures struct {
	FeaturedTimesPerWeek int
	PriorityInSearch     bool
	HighlightedProfile   bool
	AnalyticsAccess      bool
	CustomerSupportLevel string
	Price                float64
}

// PlanFeature - имя фичи тарифа для проверки через HasPlanFeature
type PlanFeature string

const (
	FeatureFeatured         PlanFeature = "featured_times_per_week"
	FeaturePrioritySearch   PlanFeature = "priority_in_search"
	FeatureHighlighted      PlanFeature = "highlighted_profile"
	FeatureAnalyticsAccess  PlanFeature = "analytics_access"
	FeatureCustomerSupport  PlanFeature = "customer_support_level"
)

// subscriptionFeatures - тариф -> набор фич. Для 'none' набора нет.
var subscriptionFeatures = map[models.SubscriptionPlan]*SubscriptionFeatures{
	models.SubscriptionPlanNone: nil,
	models.SubscriptionPlanBronze: {
		FeaturedTimesPerWeek: 2,
		PriorityInSearch:     false,
		HighlightedProfile:   true,
		AnalyticsAccess:      false,
		CustomerSupportLevel: "basic",
		Price:                29.99,
	},
	models.SubscriptionPlanSilver: {
		FeaturedTimesPerWeek: 4,
		PriorityInSearch:     true,
		HighlightedProfile:   true,
		AnalyticsAccess:      true,
		CustomerSupportLevel: "priority",
		Price:                59.99,
	},
	models.SubscriptionPlanGold: {
		FeaturedTimesPerWeek: 7, // daily
		PriorityInSearch:     true,
		HighlightedProfile:   true,
		AnalyticsAccess:      true,
		CustomerSupportLevel: "premium",
		Price:                99.99,
	},
}

// PlanFeatures возвращает набор фич тарифа (nil для 'none' и неизвестных тарифов)
func PlanFeatures(plan models.SubscriptionPlan) *SubscriptionFeatures {
	return subscriptionFeatures[plan]
}

// PlanPrice - месячная цена тарифа. 'none' бесплатен.
func PlanPrice(plan models.SubscriptionPlan) float64 {
	features := subscriptionFeatures[plan]
	if features == nil {
		return 0
	}
	return features.Price
}

// HasPlanFeature проверяет, включает ли тариф указанную фичу.
// Неизвестный тариф и 'none' -> false для любых фич.
func HasPlanFeature(plan models.SubscriptionPlan, feature PlanFeature) bool {
	features := subscriptionFeatures[plan]
	if features == nil {
		return false
	}
	switch feature {
	case FeatureFeatured:
		return features.FeaturedTimesPerWeek > 0
	case FeaturePrioritySearch:
		return features.PriorityInSearch
	case FeatureHighlighted:
		return features.HighlightedProfile
	case FeatureAnalyticsAccess:
		return features.AnalyticsAccess
	case FeatureCustomerSupport:
		return features.CustomerSupportLevel != ""
	default:
		return false
	}
}

// PlanName - отображаемое имя тарифа
func PlanName(plan models.SubscriptionPlan) string {
	switch plan {
	case models.SubscriptionPlanBronze:
		return "Bronze Plan"
	case models.SubscriptionPlanSilver:
		return "Silver Plan"
	case models.SubscriptionPlanGold:
		return "Gold Plan"
	default:
		return "Free Plan"
	}
}

// PlanDescription - краткое описание тарифа
func PlanDescription(plan models.SubscriptionPlan) string {
	switch plan {
	case models.SubscriptionPlanBronze:
		return "Featured profile 2 times per week with highlighted visibility"
	case models.SubscriptionPlanSilver:
		return "Featured profile 4 times per week with priority search ranking"
	case models.SubscriptionPlanGold:
		return "Featured profile daily with maximum visibility and priority support"
	default:
		return "Basic access to the platform"
	}
}

// PaymentGatewayFee - комиссия платежного шлюза.
// Stripe/Braintree: 2.9% + $0.30
func PaymentGatewayFee(amount float64) float64 {
	return amount*0.029 + 0.30
}

// TotalWithFee - сумма к списанию с учетом комиссии шлюза
func TotalWithFee(amount float64) float64 {
	return amount + PaymentGatewayFee(amount)
}

// FormatCurrency форматирует сумму в USD
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
