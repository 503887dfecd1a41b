package services

import (
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProviderService interface {
	GetProviders(db *gorm.DB, req *dto.ProviderListRequest) (*dto.ProviderListResponse, error)
	GetProvider(db *gorm.DB, userID string) (*dto.AccountResponse, error)
	UpdateProvider(db *gorm.DB, userID string, req *dto.UpdateProviderRequest) (*dto.AccountResponse, error)
}

type ProviderServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
}

func NewProviderService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
) ProviderService {
	return &ProviderServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
	}
}

// GetProviders возвращает страницу активированных провайдеров,
// отсортированных по рейтингу
func (s *ProviderServiceImpl) GetProviders(db *gorm.DB, req *dto.ProviderListRequest) (*dto.ProviderListResponse, error) {
	filter := repositories.ProviderFilter{
		City:         req.City,
		State:        req.State,
		ServiceName:  req.Service,
		MinRating:    req.MinRating,
		VerifiedOnly: req.VerifiedOnly,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}

	providers, total, err := s.providerRepo.FindProviders(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	accounts := make([]*dto.AccountResponse, 0, len(providers))
	for i := range providers {
		p := providers[i]
		account := &models.Account{User: p.User, Provider: &p}
		accounts = append(accounts, dto.NewAccountResponse(account))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	return &dto.ProviderListResponse{
		Providers: accounts,
		Total:     total,
		Limit:     limit,
		Offset:    filter.Offset,
	}, nil
}

func (s *ProviderServiceImpl) GetProvider(db *gorm.DB, userID string) (*dto.AccountResponse, error) {
	account, err := hydrateAccount(db, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsProvider() {
		return nil, apperrors.ErrInvalidUserRole
	}
	return dto.NewAccountResponse(account), nil
}

// UpdateProvider обновляет профиль провайдера. Списки услуг и портфолио
// заменяются целиком, если переданы.
func (s *ProviderServiceImpl) UpdateProvider(db *gorm.DB, userID string, req *dto.UpdateProviderRequest) (*dto.AccountResponse, error) {
	fields := map[string]interface{}{}
	if req.BusinessName != nil {
		fields["business_name"] = *req.BusinessName
	}
	if req.PriceRangeMin != nil {
		fields["price_range_min"] = *req.PriceRangeMin
	}
	if req.PriceRangeMax != nil {
		fields["price_range_max"] = *req.PriceRangeMax
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.HasInsurance != nil {
		fields["has_insurance"] = *req.HasInsurance
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.providerRepo.Update(tx, userID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrProviderNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.DatabaseError(err)
		}
		if req.Services != nil {
			if err := s.providerRepo.ReplaceServices(tx, userID, *req.Services); err != nil {
				return apperrors.DatabaseError(err)
			}
		}
		if req.PortfolioImages != nil {
			if err := s.providerRepo.ReplacePortfolio(tx, userID, *req.PortfolioImages); err != nil {
				return apperrors.DatabaseError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account, err := hydrateAccount(db, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewAccountResponse(account), nil
}
