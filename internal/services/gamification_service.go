package services

import (
	"time"

	"homepro_backend/internal/gamification"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GamificationService interface {
	GetStatus(db *gorm.DB, providerID string) (*dto.GamificationStatusResponse, error)
	ClaimBonuses(db *gorm.DB, providerID string) (*dto.ClaimBonusResponse, error)
}

type GamificationServiceImpl struct {
	reviewRepo       repositories.ReviewRepository
	gamificationRepo repositories.GamificationRepository
	providerRepo     repositories.ProviderRepository
}

func NewGamificationService(
	reviewRepo repositories.ReviewRepository,
	gamificationRepo repositories.GamificationRepository,
	providerRepo repositories.ProviderRepository,
) GamificationService {
	return &GamificationServiceImpl{
		reviewRepo:       reviewRepo,
		gamificationRepo: gamificationRepo,
		providerRepo:     providerRepo,
	}
}

// GetStatus - прогресс провайдера к бонусам и сколько лидов можно забрать
func (s *GamificationServiceImpl) GetStatus(db *gorm.DB, providerID string) (*dto.GamificationStatusResponse, error) {
	reviews, err := s.reviewRepo.FindReviewsByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	rewards, err := s.gamificationRepo.FindRewardsByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	now := time.Now()
	status := gamification.GetStatus(reviews, providerID, now)
	claimable := gamification.CalculateBonusLeads(reviews, providerID, rewards, now)

	return &dto.GamificationStatusResponse{
		SevenReviews:      status.SevenReviewsProgress,
		TenPerfectReviews: status.TenPerfectProgress,
		ClaimableLeads:    claimable,
	}, nil
}

// ClaimBonuses выдает заработанные бонусы. Каждая награда одноразовая:
// записи rewards служат guard-ом, повторный вызов ничего не выдает.
func (s *GamificationServiceImpl) ClaimBonuses(db *gorm.DB, providerID string) (*dto.ClaimBonusResponse, error) {
	var resp *dto.ClaimBonusResponse

	err := db.Transaction(func(tx *gorm.DB) error {
		reviews, err := s.reviewRepo.FindReviewsByProvider(tx, providerID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		rewards, err := s.gamificationRepo.FindRewardsByProvider(tx, providerID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}

		now := time.Now()
		awarded := 0
		var awardedTypes []string

		claim := func(rewardType models.RewardType, qualified bool) error {
			if !qualified {
				return nil
			}
			for _, r := range rewards {
				if r.RewardType == rewardType {
					return nil
				}
			}

			bonusLeads := gamification.RewardBonusLeads(rewardType)
			reward := &models.GamificationReward{
				ProviderID: providerID,
				RewardType: rewardType,
				BonusLeads: bonusLeads,
				AwardedAt:  now,
			}
			if err := s.gamificationRepo.CreateReward(tx, reward); err != nil {
				return apperrors.DatabaseError(err)
			}
			if err := s.providerRepo.AddBonusLeads(tx, providerID, bonusLeads); err != nil {
				return apperrors.DatabaseError(err)
			}

			awarded += bonusLeads
			awardedTypes = append(awardedTypes, string(rewardType))
			return nil
		}

		if err := claim(models.RewardTypeSevenReviews, gamification.CheckSevenReviewsBonus(reviews, providerID)); err != nil {
			return err
		}
		if err := claim(models.RewardTypeTenPerfect, gamification.CheckTenPerfectReviewsBonus(reviews, providerID, now)); err != nil {
			return err
		}

		provider, err := s.providerRepo.FindByUserID(tx, providerID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProviderNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.DatabaseError(err)
		}

		if awarded > 0 {
			logger.Info("✅ Bonus leads awarded",
				"provider_id", providerID,
				"leads", awarded,
				"rewards", awardedTypes)
		}

		resp = &dto.ClaimBonusResponse{
			AwardedLeads: awarded,
			Rewards:      awardedTypes,
			BonusLeads:   provider.BonusLeads,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
