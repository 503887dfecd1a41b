package services

import (
	"homepro_backend/internal/auth"
	"homepro_backend/internal/email"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	providerRepo  repositories.ProviderRepository
	customerRepo  repositories.CustomerRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	customerRepo repositories.CustomerRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		providerRepo:  providerRepo,
		customerRepo:  customerRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Пользователь и его ролевой профиль создаются в одной транзакции:
// либо обе строки, либо ни одной.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if req.Role != models.UserRoleCustomer && req.Role != models.UserRoleProvider {
		return nil, apperrors.ErrInvalidUserRole
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		Role:         req.Role,
		ZipCode:      req.ZipCode,
		City:         req.City,
		State:        req.State,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.DatabaseError(err)
		}

		switch req.Role {
		case models.UserRoleProvider:
			// Профиль создается неактивированным: активация происходит
			// после успешной проверки биографии
			provider := &models.Provider{
				UserID:                user.ID,
				BusinessName:          req.BusinessName,
				PriceRangeMin:         req.PriceRangeMin,
				PriceRangeMax:         req.PriceRangeMax,
				Level:                 1,
				HasInsurance:          req.HasInsurance,
				Bio:                   req.Bio,
				Experience:            req.Experience,
				SubscriptionPlan:      models.SubscriptionPlanNone,
				BackgroundCheckStatus: models.BackgroundCheckPending,
				ProfileActivated:      false,
			}
			for _, name := range req.Services {
				provider.Services = append(provider.Services, models.ProviderService{ServiceName: name})
			}
			if err := s.providerRepo.Create(tx, provider); err != nil {
				return apperrors.DatabaseError(err)
			}
		case models.UserRoleCustomer:
			if err := s.customerRepo.Create(tx, &models.Customer{UserID: user.ID}); err != nil {
				return apperrors.DatabaseError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Письмо best-effort: сбой отправки не откатывает регистрацию
	if s.emailProvider != nil {
		if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
			logger.WithError(err).Warn("Failed to send welcome email", "email", user.Email)
		}
	}

	return s.buildAuthResponse(db, user.ID)
}

// Login - аутентификация пользователя.
// Неизвестный email и неверный пароль дают одинаковую ошибку.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(db, user.ID)
}

func (s *AuthServiceImpl) buildAuthResponse(db *gorm.DB, userID string) (*dto.AuthResponse, error) {
	account, err := hydrateAccount(db, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(account.User.ID, string(account.User.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewAccountResponse(account),
	}, nil
}

// hydrateAccount загружает пользователя и собирает tagged-union аккаунт
func hydrateAccount(db *gorm.DB, userRepo repositories.UserRepository, userID string) (*models.Account, error) {
	user, err := userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	account := &models.Account{User: *user}
	switch user.Role {
	case models.UserRoleProvider:
		account.Provider = user.Provider
	case models.UserRoleCustomer:
		account.Customer = user.Customer
	}
	return account, nil
}
