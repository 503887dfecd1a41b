package services

import (
	"fmt"
	"time"

	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Сроки действия купленных пакетов
const (
	weeklyPackValidity  = 7 * 24 * time.Hour
	monthlyPackValidity = 30 * 24 * time.Hour
)

type LeadService interface {
	GetPackages(db *gorm.DB) ([]dto.LeadPackageResponse, error)
	PurchasePackage(db *gorm.DB, providerID string, req *dto.PurchasePackageRequest) (*dto.PurchasePackageResponse, error)
	GetAvailableLeads(db *gorm.DB, city, state string, limit, offset int) (*dto.LeadListResponse, error)
	PurchaseLead(db *gorm.DB, providerID, leadID string) (*dto.LeadResponse, error)
	GetMyLeads(db *gorm.DB, providerID string) (*dto.LeadListResponse, error)
}

type LeadServiceImpl struct {
	leadRepo       repositories.LeadRepository
	providerRepo   repositories.ProviderRepository
	paymentService PaymentService
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	providerRepo repositories.ProviderRepository,
	paymentService PaymentService,
) LeadService {
	return &LeadServiceImpl{
		leadRepo:       leadRepo,
		providerRepo:   providerRepo,
		paymentService: paymentService,
	}
}

// GetPackages возвращает каталог пакетов из БД
func (s *LeadServiceImpl) GetPackages(db *gorm.DB) ([]dto.LeadPackageResponse, error) {
	rows, err := s.leadRepo.FindAllPackages(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.LeadPackageResponse, 0, len(rows))
	for _, row := range rows {
		pkg := pricing.LeadPackage{
			ID:                row.ID,
			Name:              row.Name,
			LeadsCount:        row.LeadsCount,
			Price:             row.Price,
			Duration:          row.Duration,
			SavingsPercentage: row.SavingsPercentage,
		}
		responses = append(responses, dto.LeadPackageResponse{
			ID:                row.ID,
			Name:              row.Name,
			LeadsCount:        row.LeadsCount,
			Price:             row.Price,
			PricePerLead:      pricing.PricePerLead(pkg),
			Duration:          string(row.Duration),
			SavingsPercentage: row.SavingsPercentage,
			Savings:           pricing.Savings(pkg),
		})
	}
	return responses, nil
}

// PurchasePackage покупает пакет лидов: платеж (цена + комиссия шлюза),
// зачисление лидов на баланс и запись покупки - одной транзакцией.
func (s *LeadServiceImpl) PurchasePackage(db *gorm.DB, providerID string, req *dto.PurchasePackageRequest) (*dto.PurchasePackageResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !provider.ProfileActivated {
		return nil, apperrors.ErrProfileNotActivated
	}

	pkg, err := s.leadRepo.FindPackageByID(db, req.PackageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadPackageNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	gatewayFee := pricing.PaymentGatewayFee(pkg.Price)
	totalCharged := pricing.TotalWithFee(pkg.Price)

	var resp *dto.PurchasePackageResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		description := fmt.Sprintf("%s (%d leads)", pkg.Name, pkg.LeadsCount)
		if _, err := s.paymentService.Charge(tx, providerID, totalCharged, models.PaymentTypeLeadPurchase, req.PaymentMethodID, description); err != nil {
			return err
		}

		if err := s.providerRepo.AddAvailableLeads(tx, providerID, pkg.LeadsCount); err != nil {
			return apperrors.DatabaseError(err)
		}

		now := time.Now()
		purchase := &models.LeadPurchase{
			ProviderID:  providerID,
			PackageID:   pkg.ID,
			LeadsCount:  pkg.LeadsCount,
			TotalPrice:  pkg.Price,
			PurchasedAt: now,
			ExpiresAt:   packageExpiry(pkg.Duration, now),
		}
		if err := s.leadRepo.CreatePurchase(tx, purchase); err != nil {
			return apperrors.DatabaseError(err)
		}

		resp = &dto.PurchasePackageResponse{
			PurchaseID:     purchase.ID,
			LeadsCount:     pkg.LeadsCount,
			TotalPrice:     pkg.Price,
			GatewayFee:     gatewayFee,
			TotalCharged:   totalCharged,
			AvailableLeads: provider.AvailableLeads + pkg.LeadsCount,
			ExpiresAt:      purchase.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *LeadServiceImpl) GetAvailableLeads(db *gorm.DB, city, state string, limit, offset int) (*dto.LeadListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	leads, err := s.leadRepo.FindAvailableLeads(db, city, state, limit, offset)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.LeadListResponse{Leads: leadResponses(leads)}, nil
}

// PurchaseLead открывает контакт по заявке за один лид с баланса.
// Сначала списываются бонусные лиды, затем купленные.
func (s *LeadServiceImpl) PurchaseLead(db *gorm.DB, providerID, leadID string) (*dto.LeadResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !provider.ProfileActivated {
		return nil, apperrors.ErrProfileNotActivated
	}

	var resp *dto.LeadResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.providerRepo.ConsumeLead(tx, providerID); err != nil {
			if apperrors.Is(err, repositories.ErrNoLeadsLeft) {
				return apperrors.ErrNoAvailableLeads
			}
			return apperrors.DatabaseError(err)
		}

		if err := s.leadRepo.MarkPurchased(tx, leadID, providerID); err != nil {
			switch {
			case apperrors.Is(err, repositories.ErrLeadNotFound):
				return apperrors.ErrNotFound(err)
			case apperrors.Is(err, repositories.ErrLeadNotAvailable):
				return apperrors.ErrLeadNotAvailable
			default:
				return apperrors.DatabaseError(err)
			}
		}

		lead, err := s.leadRepo.FindLeadByID(tx, leadID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		r := leadResponse(lead)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *LeadServiceImpl) GetMyLeads(db *gorm.DB, providerID string) (*dto.LeadListResponse, error) {
	leads, err := s.leadRepo.FindLeadsByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.LeadListResponse{Leads: leadResponses(leads)}, nil
}

func packageExpiry(duration models.PackageDuration, from time.Time) *time.Time {
	var expiry time.Time
	switch duration {
	case models.PackageDurationWeekly:
		expiry = from.Add(weeklyPackValidity)
	case models.PackageDurationMonthly:
		expiry = from.Add(monthlyPackValidity)
	default:
		// Одиночный лид не истекает
		return nil
	}
	return &expiry
}

func leadResponse(lead *models.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:               lead.ID,
		ServiceRequestID: lead.ServiceRequestID,
		CustomerID:       lead.CustomerID,
		Price:            lead.Price,
		Status:           lead.Status,
		PurchasedAt:      lead.PurchasedAt,
		CreatedAt:        lead.CreatedAt,
	}
}

func leadResponses(leads []models.Lead) []dto.LeadResponse {
	responses := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, leadResponse(&leads[i]))
	}
	return responses
}
