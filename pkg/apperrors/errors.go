package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - базовый конструктор
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - оборачивает существующую ошибку в AppError
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// InternalError - внутренняя ошибка сервера (500)
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// DatabaseError - ошибка хранилища. Исходная ошибка не транслируется
// в доменную, только логируется и пробрасывается дальше.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage", "Database operation failed", http.StatusInternalServerError)
}

// NewBadRequestError - 400 с произвольным сообщением
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "validation", message, http.StatusBadRequest)
}

// ValidationError - ошибка валидации с деталями по полям
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// Is - обертка над errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
