package validator

import (
	"log"

	"homepro_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации
// для доменных enum-типов
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка конфигурации приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-request-status", validateRequestStatus)
	mustRegister("is-subscription-plan", validateSubscriptionPlan)
	mustRegister("is-reviewer-type", validateReviewerType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые проверяет 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleCustomer, models.UserRoleProvider:
		return true
	default:
		return false
	}
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RequestStatus(value) {
	case models.RequestStatusOpen, models.RequestStatusInProgress,
		models.RequestStatusCompleted, models.RequestStatusCancelled:
		return true
	default:
		return false
	}
}

func validateSubscriptionPlan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SubscriptionPlan(value) {
	case models.SubscriptionPlanNone, models.SubscriptionPlanBronze,
		models.SubscriptionPlanSilver, models.SubscriptionPlanGold:
		return true
	default:
		return false
	}
}

func validateReviewerType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReviewerType(value) {
	case models.ReviewerTypeCustomer, models.ReviewerTypeProvider:
		return true
	default:
		return false
	}
}
