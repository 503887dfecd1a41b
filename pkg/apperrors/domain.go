package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials - email не найден или пароль не подошел.
// Эти два случая для вызывающего неразличимы.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - попытка регистрации на занятый email
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrWeakPassword - пароль не проходит минимальные требования
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password is too weak",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - действие запрещено для этого пользователя
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Leads ---

// ErrNoAvailableLeads - у провайдера кончились оплаченные и бонусные лиды
var ErrNoAvailableLeads = New(
	CodeLimitExceeded,
	"leads",
	"No available leads on the balance",
	http.StatusPaymentRequired,
)

// ErrLeadNotAvailable - лид уже куплен или истек
var ErrLeadNotAvailable = New(
	CodeInvalidStatus,
	"leads",
	"Lead is not available for purchase",
	http.StatusConflict,
)

// --- Reviews & Disputes ---

// ErrReviewAlreadyDisputed - по отзыву уже открыт спор
var ErrReviewAlreadyDisputed = New(
	CodeConflict,
	"reviews",
	"Review is already disputed",
	http.StatusConflict,
)

// --- Background checks ---

// ErrConsentRequired - провайдер не дал согласие на проверку
var ErrConsentRequired = New(
	CodeInvalidOperation,
	"background_check",
	"Background check consent has not been submitted",
	http.StatusBadRequest,
)

// ErrProfileNotActivated - профиль провайдера не активирован проверкой
var ErrProfileNotActivated = New(
	CodeForbidden,
	"background_check",
	"Provider profile is not activated",
	http.StatusForbidden,
)

// --- Subscriptions & Payments ---

// ErrSubscriptionCancelled - подписка уже отменена
var ErrSubscriptionCancelled = New(
	CodeInvalidOperation,
	"subscription",
	"Subscription is already cancelled",
	http.StatusBadRequest,
)

// ErrPaymentDeclined - симулированный шлюз отклонил платеж
var ErrPaymentDeclined = New(
	CodeExternalServiceError,
	"payment",
	"Payment was declined",
	http.StatusPaymentRequired,
)

// ErrNoPaymentMethod - у пользователя нет сохраненного способа оплаты
var ErrNoPaymentMethod = New(
	CodeInvalidOperation,
	"payment",
	"No payment method on file",
	http.StatusBadRequest,
)
