package services

import (
	"encoding/json"
	"time"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const backgroundCheckVendor = "Checkr"

type BackgroundCheckService interface {
	SubmitConsent(db *gorm.DB, providerID, ipAddress string, req *dto.ConsentRequest) (*dto.BackgroundCheckResponse, error)
	GetStatus(db *gorm.DB, providerID string) (*dto.BackgroundCheckResponse, error)
	CompleteCheck(db *gorm.DB, providerID string) (*dto.BackgroundCheckResponse, error)
}

type BackgroundCheckServiceImpl struct {
	checkRepo    repositories.BackgroundCheckRepository
	providerRepo repositories.ProviderRepository
}

func NewBackgroundCheckService(
	checkRepo repositories.BackgroundCheckRepository,
	providerRepo repositories.ProviderRepository,
) BackgroundCheckService {
	return &BackgroundCheckServiceImpl{
		checkRepo:    checkRepo,
		providerRepo: providerRepo,
	}
}

// vendorResult - канонический ответ симулированного вендора
type vendorResult struct {
	ClearanceLevel  models.ClearanceLevel `json:"clearanceLevel"`
	CriminalRecords int                   `json:"criminalRecords"`
	SexOffender     bool                  `json:"sexOffender"`
	IdentityMatch   bool                  `json:"identityMatch"`
}

// SubmitConsent принимает согласие провайдера и запускает проверку
func (s *BackgroundCheckServiceImpl) SubmitConsent(db *gorm.DB, providerID, ipAddress string, req *dto.ConsentRequest) (*dto.BackgroundCheckResponse, error) {
	provider, err := s.providerRepo.FindByUserID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if provider.ProfileActivated {
		return nil, apperrors.ErrInvalidOperation("background_check", "Profile is already activated")
	}

	check := &models.BackgroundCheck{
		ProviderID:  providerID,
		Status:      models.BackgroundCheckInProgress,
		InitiatedAt: time.Now(),
		CheckVendor: backgroundCheckVendor,
		Results:     datatypes.JSON([]byte(`{}`)),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		consent := &models.BackgroundCheckConsent{
			ProviderID:           providerID,
			ConsentGivenAt:       time.Now(),
			IPAddress:            ipAddress,
			FullLegalName:        req.FullLegalName,
			DateOfBirth:          req.DateOfBirth,
			SocialSecurityNumber: req.SocialSecurityNumber,
			DriversLicenseNumber: req.DriversLicenseNumber,
			AgreedToTerms:        req.AgreedToTerms,
		}
		if err := s.checkRepo.CreateConsent(tx, consent); err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := s.checkRepo.CreateCheck(tx, check); err != nil {
			return apperrors.DatabaseError(err)
		}
		return s.providerRepo.Update(tx, providerID, map[string]interface{}{
			"background_check_status": models.BackgroundCheckInProgress,
		})
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewBackgroundCheckResponse(check)
	return &resp, nil
}

func (s *BackgroundCheckServiceImpl) GetStatus(db *gorm.DB, providerID string) (*dto.BackgroundCheckResponse, error) {
	check, err := s.checkRepo.FindLatestByProvider(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBackgroundCheckNotFound) {
			return nil, apperrors.ErrConsentRequired
		}
		return nil, apperrors.DatabaseError(err)
	}
	resp := dto.NewBackgroundCheckResponse(check)
	return &resp, nil
}

// CompleteCheck завершает проверку симулированным ответом вендора.
// approved активирует профиль; review_required помечает flagged;
// denied отклоняет заявку.
func (s *BackgroundCheckServiceImpl) CompleteCheck(db *gorm.DB, providerID string) (*dto.BackgroundCheckResponse, error) {
	check, err := s.checkRepo.FindLatestByProvider(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBackgroundCheckNotFound) {
			return nil, apperrors.ErrConsentRequired
		}
		return nil, apperrors.DatabaseError(err)
	}
	if check.Status != models.BackgroundCheckPending && check.Status != models.BackgroundCheckInProgress {
		return nil, apperrors.ErrInvalidStatus("background_check", "Background check is already completed")
	}

	result := s.simulateVendorResult(providerID)
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var status models.BackgroundCheckStatus
	providerFields := map[string]interface{}{}

	switch result.ClearanceLevel {
	case models.ClearanceApproved:
		status = models.BackgroundCheckClear
		providerFields["profile_activated"] = true
		providerFields["background_check_date"] = time.Now()
	case models.ClearanceReviewRequired:
		status = models.BackgroundCheckFlagged
	default:
		status = models.BackgroundCheckRejected
	}
	providerFields["background_check_status"] = status

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkRepo.CompleteCheck(tx, check.ID, status, resultsJSON); err != nil {
			return apperrors.DatabaseError(err)
		}
		return s.providerRepo.Update(tx, providerID, providerFields)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Background check completed",
		"provider_id", providerID,
		"status", string(status))

	updated, err := s.checkRepo.FindLatestByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	resp := dto.NewBackgroundCheckResponse(updated)
	return &resp, nil
}

// simulateVendorResult - детерминированная заглушка вместо реального вендора.
// Реальной интеграции нет, проверка всегда проходит чисто.
func (s *BackgroundCheckServiceImpl) simulateVendorResult(providerID string) vendorResult {
	return vendorResult{
		ClearanceLevel:  models.ClearanceApproved,
		CriminalRecords: 0,
		SexOffender:     false,
		IdentityMatch:   true,
	}
}
