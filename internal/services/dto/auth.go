package dto

import "homepro_backend/internal/models"

// RegisterRequest - общая форма регистрации. Поля провайдера
// обязательны только при role=provider.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Phone    string          `json:"phone" validate:"omitempty,max=30"`
	Role     models.UserRole `json:"role" validate:"required,oneof=customer provider"`
	ZipCode  string          `json:"zipCode" validate:"omitempty,max=10"`
	City     string          `json:"city" validate:"omitempty,max=100"`
	State    string          `json:"state" validate:"omitempty,max=50"`

	// Provider-only
	BusinessName  string   `json:"businessName" validate:"omitempty,max=200"`
	Services      []string `json:"services" validate:"omitempty,dive,min=1"`
	PriceRangeMin float64  `json:"priceRangeMin" validate:"omitempty,gte=0"`
	PriceRangeMax float64  `json:"priceRangeMax" validate:"omitempty,gte=0"`
	Bio           string   `json:"bio" validate:"omitempty,max=2000"`
	Experience    string   `json:"experience" validate:"omitempty,max=100"`
	HasInsurance  bool     `json:"hasInsurance"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *AccountResponse `json:"user"`
}
