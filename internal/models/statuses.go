package models

type UserRole string
type RequestStatus string
type LeadStatus string
type PackageDuration string
type SubscriptionPlan string
type BackgroundCheckStatus string
type ClearanceLevel string
type RewardType string
type ReviewerType string
type DisputeStatus string
type PaymentMethodType string
type PaymentType string
type PaymentStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleProvider UserRole = "provider"

	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"

	LeadStatusAvailable LeadStatus = "available"
	LeadStatusPurchased LeadStatus = "purchased"
	LeadStatusExpired   LeadStatus = "expired"

	PackageDurationSingle  PackageDuration = "single"
	PackageDurationWeekly  PackageDuration = "weekly"
	PackageDurationMonthly PackageDuration = "monthly"

	SubscriptionPlanNone   SubscriptionPlan = "none"
	SubscriptionPlanBronze SubscriptionPlan = "bronze"
	SubscriptionPlanSilver SubscriptionPlan = "silver"
	SubscriptionPlanGold   SubscriptionPlan = "gold"

	BackgroundCheckPending    BackgroundCheckStatus = "pending"
	BackgroundCheckInProgress BackgroundCheckStatus = "in_progress"
	BackgroundCheckClear      BackgroundCheckStatus = "clear"
	BackgroundCheckFlagged    BackgroundCheckStatus = "flagged"
	BackgroundCheckRejected   BackgroundCheckStatus = "rejected"
	BackgroundCheckExpired    BackgroundCheckStatus = "expired"

	// Вердикт внешнего провайдера проверок
	ClearanceApproved       ClearanceLevel = "approved"
	ClearanceReviewRequired ClearanceLevel = "review_required"
	ClearanceDenied         ClearanceLevel = "denied"

	RewardTypeSevenReviews RewardType = "7reviews_4stars"
	RewardTypeTenPerfect   RewardType = "10reviews_5stars"

	ReviewerTypeCustomer ReviewerType = "customer"
	ReviewerTypeProvider ReviewerType = "provider"

	DisputeStatusPending  DisputeStatus = "pending"
	DisputeStatusApproved DisputeStatus = "approved"
	DisputeStatusRejected DisputeStatus = "rejected"

	PaymentMethodCard        PaymentMethodType = "card"
	PaymentMethodBankAccount PaymentMethodType = "bank_account"

	PaymentTypeLeadPurchase PaymentType = "lead_purchase"
	PaymentTypeSubscription PaymentType = "subscription"
	PaymentTypeVerification PaymentType = "verification"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)
